package services

import (
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/pkg/errs"
)

// AccessPolicy scopes order operations to the actor's branch.
//
// Business rules:
//   - only the destination branch advances an order
//   - only the origin branch confirms receipt
//   - both branches, and nobody else, may view an order
//   - an actor without a bound branch may do none of the above
//
// Each Authorize method returns location.ErrActorHasNoLocation for unbound
// actors and an errs.ForbiddenError naming the rule otherwise.
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

func (p AccessPolicy) CanAdvance(actorLocation kernel.UUID, o *order.Order) bool {
	return o.Destination().IsEqual(actorLocation)
}

func (p AccessPolicy) CanConfirm(actorLocation kernel.UUID, o *order.Order) bool {
	return o.Origin().IsEqual(actorLocation)
}

func (p AccessPolicy) CanView(actorLocation kernel.UUID, o *order.Order) bool {
	return p.CanAdvance(actorLocation, o) || p.CanConfirm(actorLocation, o)
}

func (p AccessPolicy) AuthorizeAdvance(binding *location.Binding, o *order.Order) error {
	return p.authorize(binding, o, p.CanAdvance, order.ActionAdvance,
		"only the destination location can advance the order")
}

func (p AccessPolicy) AuthorizeConfirm(binding *location.Binding, o *order.Order) error {
	return p.authorize(binding, o, p.CanConfirm, order.ActionConfirm,
		"only the origin location can confirm receipt")
}

func (p AccessPolicy) AuthorizeView(binding *location.Binding, o *order.Order) error {
	return p.authorize(binding, o, p.CanView, "view order",
		"only the origin or destination location can view the order")
}

func (p AccessPolicy) authorize(
	binding *location.Binding,
	o *order.Order,
	allowed func(kernel.UUID, *order.Order) bool,
	action, reason string,
) error {
	actorLocation, err := binding.LocationID()
	if err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if !allowed(actorLocation, o) {
		return errs.NewForbiddenError(action, reason)
	}
	return nil
}
