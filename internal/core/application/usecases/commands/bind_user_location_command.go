package commands

import (
	"errors"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/guard"
)

var ErrBindUserLocationCommandIsNotConstructed = errors.New(
	"BindUserLocationCommand must be created via NewBindUserLocationCommand constructor",
)

// BindUserLocationCommand assigns a user to a branch, replacing any previous binding.
// This is the only way a user obtains a branch; there is no default.
type BindUserLocationCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewBindUserLocationCommand(userID, locationID kernel.UUID) (BindUserLocationCommand, error) {
	if err := errors.Join(userID.Validate(), locationID.Validate()); err != nil {
		return BindUserLocationCommand{}, err
	}

	return BindUserLocationCommand{
		userID:     userID,
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c BindUserLocationCommand) Validate() error {
	return c.guard.Validate(ErrBindUserLocationCommandIsNotConstructed)
}

func (c BindUserLocationCommand) UserID() kernel.UUID {
	return c.userID
}

func (c BindUserLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}
