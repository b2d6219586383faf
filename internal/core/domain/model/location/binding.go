package location

import (
	"errors"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/errs"
)

var (
	ErrBindingIsNotConstructed = errors.New("Binding must be created via NewBinding or RestoreBinding")

	// ErrActorHasNoLocation is returned for users that have no binding or an unbound one.
	// It belongs to the validation class (errs.ErrValidation).
	ErrActorHasNoLocation = errs.NewValueIsRequiredErrorWithCause(
		"user location",
		errors.New("user has no location configured, an administrator must bind the user to a location"),
	)
)

// Binding associates a user identity with the branch the user works at.
// The location is optional so that a freshly provisioned user can exist in a
// "pending setup" state, which blocks the user from every order operation.
type Binding struct {
	userID     kernel.UUID
	locationID *kernel.UUID
}

// NewBinding creates a binding of userID to locationID.
func NewBinding(userID kernel.UUID, locationID kernel.UUID) (*Binding, error) {
	return RestoreBinding(userID, &locationID)
}

// RestoreBinding rebuilds a binding read from persistence; locationID may be nil.
func RestoreBinding(userID kernel.UUID, locationID *kernel.UUID) (*Binding, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	b := &Binding{userID: userID}
	if locationID != nil {
		if err := b.Rebind(*locationID); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Binding) Validate() error {
	if b == nil {
		return ErrBindingIsNotConstructed
	}
	return b.userID.Validate()
}

func (b *Binding) UserID() kernel.UUID {
	return b.userID
}

// LocationID returns the bound location or ErrActorHasNoLocation.
func (b *Binding) LocationID() (kernel.UUID, error) {
	if b == nil || b.locationID == nil {
		return kernel.UUID{}, ErrActorHasNoLocation
	}
	return *b.locationID, nil
}

// IsBound reports whether the user has a location.
func (b *Binding) IsBound() bool {
	return b != nil && b.locationID != nil
}

// Rebind moves the user to another location.
func (b *Binding) Rebind(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	b.locationID = &locationID
	return nil
}
