package commands

import (
	"context"

	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/core/domain/services"
)

// ConfirmReceiptCommandHandler completes shipped orders on behalf of the origin branch.
type ConfirmReceiptCommandHandler struct {
	uowFactory LifecycleUoWFactory
	policy     services.AccessPolicy
	observer   TransitionObserver
}

func NewConfirmReceiptCommandHandler(
	uowFactory LifecycleUoWFactory,
	policy services.AccessPolicy,
	observer TransitionObserver,
) ConfirmReceiptCommandHandler {
	return ConfirmReceiptCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		observer:   observerOrNoop(observer),
	}
}

// Handle returns order.OriginReceived on success. Confirming twice yields
// errs.AlreadyFinalError, confirming before shipping errs.InvalidTransitionError.
func (h *ConfirmReceiptCommandHandler) Handle(ctx context.Context, cmd ConfirmReceiptCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	status, err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ActorID(),
		h.policy.AuthorizeConfirm, (*order.Order).ConfirmReceipt)
	if err != nil {
		return order.Unknown, err
	}

	h.observer.OrderTransitioned(status)
	return status, nil
}
