package queries

import (
	"context"
	"time"

	"requisitions/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the order list straight from the database,
// newest orders first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns an empty slice when the branch has no orders. Actors without
// a branch get location.ErrActorHasNoLocation.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	branch, err := actorLocation(ctx, h.db, query.ActorID())
	if err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.origin_id,
			origin.name,
			o.destination_id,
			destination.name,
			o.status,
			o.created_at,
			o.completed_at,
			COUNT(i.product_id),
			COALESCE(SUM(i.quantity), 0)
		FROM orders o
		JOIN locations origin ON origin.id = o.origin_id
		JOIN locations destination ON destination.id = o.destination_id
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE (o.origin_id = @branch OR o.destination_id = @branch)
			AND (NOT @active OR o.status <> @final)
		GROUP BY o.id, origin.name, destination.name
		ORDER BY o.created_at DESC, o.id
	`, map[string]any{
		"branch": branch.Bytes(),
		"active": query.ActiveOnly(),
		"final":  order.OriginReceived.String(),
	}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                        ListOrdersQueryResponse
			id, originID, destinationID uuid.UUID
			status                      string
			createdAt                   time.Time
		)

		err = rows.Scan(
			&id,
			&originID,
			&resp.Origin.Name,
			&destinationID,
			&resp.Destination.Name,
			&status,
			&createdAt,
			&resp.CompletedAt,
			&resp.ItemCount,
			&resp.TotalQuantity,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if resp.Origin.ID, err = toUUID(originID); err != nil {
			return nil, err
		}
		if resp.Destination.ID, err = toUUID(destinationID); err != nil {
			return nil, err
		}
		if resp.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt.UTC()

		resp.Direction = DirectionIncoming
		if resp.Origin.ID.IsEqual(branch) {
			resp.Direction = DirectionOutgoing
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
