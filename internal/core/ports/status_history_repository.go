package ports

import (
	"context"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
)

// StatusHistoryRepository is the append-only audit log of order status changes.
// There is deliberately no way to update or delete an entry.
type StatusHistoryRepository interface {
	// Record appends one entry. Recording the same status twice for an order
	// fails with errs.ErrInvalidTransition.
	Record(ctx context.Context, entry order.HistoryEntry) error

	// HistoryFor returns all entries of an order, oldest first.
	HistoryFor(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error)
}
