package commands

import (
	"context"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"
	"requisitions/internal/core/domain/model/order"
)

type (
	authorizeFunc  func(*location.Binding, *order.Order) error
	transitionFunc func(*order.Order, kernel.UUID, time.Time) (order.HistoryEntry, error)
)

// transitionOrder runs one lifecycle step in its own transaction:
// lock the order row, check the actor's branch, apply the step, then persist
// the status and its history entry together. Branch checks come before status
// checks, so outsiders learn nothing about an order's progress.
func transitionOrder(
	ctx context.Context,
	uowFactory LifecycleUoWFactory,
	orderID, actorID kernel.UUID,
	authorize authorizeFunc,
	step transitionFunc,
) (order.Status, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	binding, err := actorBinding(ctx, uow.BindingRepository(), actorID)
	if err != nil {
		return order.Unknown, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return order.Unknown, err
	}

	if err = authorize(binding, o); err != nil {
		return order.Unknown, err
	}

	entry, err := step(o, actorID, time.Now().UTC())
	if err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}
	if err = uow.StatusHistoryRepository().Record(ctx, entry); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return o.Status(), nil
}
