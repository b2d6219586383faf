package queries

import (
	"errors"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/pkg/guard"
)

var ErrGetOrderTimelineQueryIsNotConstructed = errors.New(
	"GetOrderTimelineQuery must be created via NewGetOrderTimelineQuery constructor",
)

// GetOrderTimelineQuery reports how long an order spent in each status.
// Visibility follows GetOrderViewQuery.
type GetOrderTimelineQuery struct {
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderTimelineQuery(orderID, actorID kernel.UUID) (GetOrderTimelineQuery, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return GetOrderTimelineQuery{}, err
	}

	return GetOrderTimelineQuery{orderID: orderID, actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTimelineQueryIsNotConstructed)
}

func (q GetOrderTimelineQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderTimelineQuery) ActorID() kernel.UUID {
	return q.actorID
}

// GetOrderTimelineQueryResponse lists one step per history entry.
// The last step of an unfinished order is still running: LeftAt is nil and
// Duration is measured up to the time of the query.
type GetOrderTimelineQueryResponse struct {
	OrderID kernel.UUID
	Status  order.Status
	Steps   []TimelineStep
	Total   time.Duration
}

type TimelineStep struct {
	Status    order.Status
	EnteredAt time.Time
	LeftAt    *time.Time
	Duration  time.Duration
}
