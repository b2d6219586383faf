package commands

import (
	"errors"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"
	"requisitions/internal/pkg/guard"
)

var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

// CreateLocationCommand registers a new branch.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	location *location.Location

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand applies the location naming rules up front.
func NewCreateLocationCommand(id kernel.UUID, name string) (CreateLocationCommand, error) {
	l, err := location.NewLocation(id, name)
	if err != nil {
		return CreateLocationCommand{}, err
	}

	return CreateLocationCommand{location: l, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

func (c CreateLocationCommand) LocationID() kernel.UUID {
	return c.location.ID()
}

func (c CreateLocationCommand) Name() string {
	return c.location.Name()
}
