package commands

import (
	"context"
	"errors"

	"requisitions/internal/core/domain/model/location"
	"requisitions/internal/pkg/errs"
)

type BindUserLocationCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

func NewBindUserLocationCommandHandler(uowFactory DirectoryUoWFactory) BindUserLocationCommandHandler {
	return BindUserLocationCommandHandler{uowFactory: uowFactory}
}

// Handle creates or moves the user's binding. The location must exist.
func (h *BindUserLocationCommandHandler) Handle(ctx context.Context, cmd BindUserLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.LocationRepository().Get(ctx, cmd.LocationID()); err != nil {
		return err
	}

	bindings := uow.BindingRepository()
	binding, err := bindings.Get(ctx, cmd.UserID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if binding, err = location.NewBinding(cmd.UserID(), cmd.LocationID()); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = binding.Rebind(cmd.LocationID()); err != nil {
			return err
		}
	}

	if err = bindings.Save(ctx, binding); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
