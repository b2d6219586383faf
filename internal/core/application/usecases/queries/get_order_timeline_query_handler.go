package queries

import (
	"context"
	"time"

	"requisitions/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOrderTimelineQueryHandler derives the timeline from the status history.
type GetOrderTimelineQueryHandler struct {
	view GetOrderViewQueryHandler
	now  func() time.Time
}

func NewGetOrderTimelineQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderTimelineQueryHandler {
	return GetOrderTimelineQueryHandler{
		view: NewGetOrderViewQueryHandler(db, policy),
		now:  time.Now,
	}
}

func (h GetOrderTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTimelineQuery,
) (GetOrderTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTimelineQueryResponse{}, err
	}

	viewQuery, err := NewGetOrderViewQuery(query.OrderID(), query.ActorID())
	if err != nil {
		return GetOrderTimelineQueryResponse{}, err
	}
	view, err := h.view.Handle(ctx, viewQuery)
	if err != nil {
		return GetOrderTimelineQueryResponse{}, err
	}

	return BuildTimeline(view, h.now().UTC()), nil
}

// BuildTimeline turns the order's history into steps. A final status has no
// duration: the order stays there forever.
func BuildTimeline(view GetOrderViewQueryResponse, now time.Time) GetOrderTimelineQueryResponse {
	timeline := GetOrderTimelineQueryResponse{
		OrderID: view.ID,
		Status:  view.Status,
		Steps:   make([]TimelineStep, 0, len(view.History)),
	}

	for i, entry := range view.History {
		step := TimelineStep{Status: entry.Status, EnteredAt: entry.ChangedAt}

		switch {
		case i+1 < len(view.History):
			left := view.History[i+1].ChangedAt
			step.LeftAt = &left
			step.Duration = left.Sub(entry.ChangedAt)
		case !entry.Status.IsFinal():
			step.Duration = max(now.Sub(entry.ChangedAt), 0)
		}

		timeline.Total += step.Duration
		timeline.Steps = append(timeline.Steps, step)
	}

	return timeline
}
