package ports

import (
	"context"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and completion time of an existing order.
	// The write is conditional on the status the order was loaded with and
	// fails with errs.ErrInvalidTransition when another transaction got there first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding
	// transaction ends. Concurrent transitions of the same order are serialized on it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
