package commands

import (
	"errors"

	"requisitions/internal/core/domain/model/cart"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents the submission of a cart by a user of the origin branch.
// The caller chooses the order id so that it can redirect to the new order.
//
// Example:
//
//	c, _ := cart.FromLines(lines)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), actorID, c)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, resolver, observer)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	cart    cart.Cart

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the identifiers and rejects empty carts with cart.ErrCartIsEmpty.
func NewCreateOrderCommand(orderID, actorID kernel.UUID, c cart.Cart) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setCart(c),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID is the submitting user.
func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c CreateOrderCommand) Cart() cart.Cart {
	return c.cart
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setCart(selection cart.Cart) error {
	if err := selection.Validate(); err != nil {
		return err
	}
	if selection.IsEmpty() {
		return cart.ErrCartIsEmpty
	}
	c.cart = selection
	return nil
}
