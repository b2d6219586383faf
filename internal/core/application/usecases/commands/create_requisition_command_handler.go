package commands

import (
	"context"
)

type CreateRequisitionCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

func NewCreateRequisitionCommandHandler(uowFactory DirectoryUoWFactory) CreateRequisitionCommandHandler {
	return CreateRequisitionCommandHandler{uowFactory: uowFactory}
}

func (h *CreateRequisitionCommandHandler) Handle(ctx context.Context, cmd CreateRequisitionCommand) error {
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

	if err := uow.CatalogRepository().Add(ctx, cmd.Requisition()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
