package commands

import (
	"errors"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/guard"
)

var ErrConfirmReceiptCommandIsNotConstructed = errors.New(
	"ConfirmReceiptCommand must be created via NewConfirmReceiptCommand constructor",
)

// ConfirmReceiptCommand records that the origin branch received a shipped order.
type ConfirmReceiptCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmReceiptCommand(orderID, actorID kernel.UUID) (ConfirmReceiptCommand, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return ConfirmReceiptCommand{}, err
	}

	return ConfirmReceiptCommand{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceiptCommandIsNotConstructed)
}

func (c ConfirmReceiptCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmReceiptCommand) ActorID() kernel.UUID {
	return c.actorID
}
