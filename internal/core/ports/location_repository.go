package ports

import (
	"context"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"
)

// LocationRepository is the branch directory.
type LocationRepository interface {
	Add(ctx context.Context, l *location.Location) error

	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)

	GetByName(ctx context.Context, name string) (*location.Location, error)

	// List returns every branch ordered by name.
	List(ctx context.Context) ([]*location.Location, error)
}

// BindingRepository stores which branch each user works at.
type BindingRepository interface {
	// Get returns the user's binding or an errs.ObjectNotFoundError.
	Get(ctx context.Context, userID kernel.UUID) (*location.Binding, error)

	// Save creates or replaces the user's binding.
	Save(ctx context.Context, b *location.Binding) error
}
