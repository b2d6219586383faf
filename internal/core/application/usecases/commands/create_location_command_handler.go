package commands

import (
	"context"

	"requisitions/internal/core/domain/model/location"
)

type CreateLocationCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

func NewCreateLocationCommandHandler(uowFactory DirectoryUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{uowFactory: uowFactory}
}

// Handle stores the branch. Duplicate names are rejected by the repository.
func (h *CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	l, err := location.NewLocation(cmd.LocationID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LocationRepository().Add(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
