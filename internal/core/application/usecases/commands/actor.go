package commands

import (
	"context"
	"errors"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"
	"requisitions/internal/core/ports"
	"requisitions/internal/pkg/errs"
)

// actorBinding loads the actor's binding and requires it to name a location.
// A user nobody has bound yet is reported like a user whose binding is empty.
func actorBinding(ctx context.Context, repo ports.BindingRepository, actorID kernel.UUID) (*location.Binding, error) {
	binding, err := repo.Get(ctx, actorID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, location.ErrActorHasNoLocation
	}
	if err != nil {
		return nil, err
	}

	if !binding.IsBound() {
		return nil, location.ErrActorHasNoLocation
	}
	return binding, nil
}
