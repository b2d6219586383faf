package commands

import (
	"errors"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand asks to move an order one step forward on behalf of a
// user of the destination branch.
//
// A command carrying an expected status only applies the step that leaves
// that status. Without one the next step is applied, whatever it is.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actorID  kernel.UUID
	expected order.Status

	guard guard.ConstructorGuard
}

func NewAdvanceOrderCommand(orderID, actorID kernel.UUID) (AdvanceOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return AdvanceOrderCommand{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ExpectingStatus returns a copy of the command bound to the status the
// caller last saw.
func (c AdvanceOrderCommand) ExpectingStatus(status order.Status) (AdvanceOrderCommand, error) {
	if err := status.Validate(); err != nil {
		return AdvanceOrderCommand{}, err
	}
	c.expected = status
	return c, nil
}

// ExpectedStatus is order.Unknown when the caller accepts whatever step comes next.
func (c AdvanceOrderCommand) ExpectedStatus() order.Status {
	return c.expected
}
