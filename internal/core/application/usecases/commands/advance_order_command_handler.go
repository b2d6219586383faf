package commands

import (
	"context"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/core/domain/services"
	"requisitions/internal/pkg/errs"
)

// AdvanceOrderCommandHandler moves orders along the destination's steps:
// Created -> DestinationReceived -> Picking -> Shipped.
//
// Errors:
//   - location.ErrActorHasNoLocation when the actor has no branch
//   - errs.ForbiddenError when the actor is not at the destination
//   - errs.AlreadyFinalError once the order is shipped
//   - errs.InvalidTransitionError when the order left the expected status
type AdvanceOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	policy     services.AccessPolicy
	observer   TransitionObserver
}

func NewAdvanceOrderCommandHandler(
	uowFactory LifecycleUoWFactory,
	policy services.AccessPolicy,
	observer TransitionObserver,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		observer:   observerOrNoop(observer),
	}
}

// Handle returns the status the order was moved to.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	status, err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ActorID(),
		h.policy.AuthorizeAdvance, advanceFrom(cmd.ExpectedStatus()))
	if err != nil {
		return order.Unknown, err
	}

	h.observer.OrderTransitioned(status)
	return status, nil
}

func advanceFrom(expected order.Status) transitionFunc {
	return func(o *order.Order, actorID kernel.UUID, at time.Time) (order.HistoryEntry, error) {
		current := o.Status()
		if expected != order.Unknown && current != expected {
			if _, err := current.Advance(); err != nil {
				return order.HistoryEntry{}, err
			}
			return order.HistoryEntry{}, errs.NewInvalidTransitionError(
				current.String(), order.ActionAdvance+" (expected "+expected.String()+")")
		}
		return o.Advance(actorID, at)
	}
}
