package commands

import (
	"context"
	"fmt"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/core/domain/services"
	"requisitions/internal/pkg/errs"
)

// CreateOrderCommandHandler submits carts as new orders.
//
// Within one transaction it:
//   - resolves the actor's branch (the origin)
//   - resolves the fulfilling branch (the destination)
//   - checks every product exists in the catalog
//   - stores the order with its items and the Created history entry
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	resolver   services.DestinationResolver
	observer   TransitionObserver
}

func NewCreateOrderCommandHandler(
	uowFactory OrderingUoWFactory,
	resolver services.DestinationResolver,
	observer TransitionObserver,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		observer:   observerOrNoop(observer),
	}
}

// Handle creates the order. Nothing is written when any check fails.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	binding, err := actorBinding(ctx, uow.BindingRepository(), cmd.ActorID())
	if err != nil {
		return err
	}
	origin, err := binding.LocationID()
	if err != nil {
		return err
	}

	locations, err := uow.LocationRepository().List(ctx)
	if err != nil {
		return err
	}
	destination, err := h.resolver.Resolve(origin, locations)
	if err != nil {
		return err
	}

	if err = h.ensureProductsExist(ctx, uow, cmd.Cart().ProductIDs()); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.ActorID(), origin, destination.ID(), cmd.Cart(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	history := uow.StatusHistoryRepository()
	for _, entry := range o.Changes() {
		if err = history.Record(ctx, entry); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.observer.OrderTransitioned(order.Created)
	return nil
}

func (h *CreateOrderCommandHandler) ensureProductsExist(ctx context.Context, uow OrderingUoW, ids []kernel.UUID) error {
	products, err := uow.CatalogRepository().GetProducts(ctx, ids)
	if err != nil {
		return err
	}

	found := make(map[kernel.UUID]struct{}, len(products))
	for _, p := range products {
		found[p.ID()] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return errs.NewValueIsInvalidErrorWithCause("product", fmt.Errorf("product %s does not exist", id))
		}
	}
	return nil
}
