package location

import (
	"errors"
	"strings"
	"unicode/utf8"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/errs"
	"requisitions/internal/pkg/guard"
)

// MaxNameLength bounds the branch name, matching the locations.name column.
const MaxNameLength = 60

var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a branch taking part in the requisition flow. It is referenced by
// bindings and by orders (as origin and as destination) and never changes after creation.
type Location struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewLocation validates and builds a Location. It is also used to restore
// locations read from persistence.
func NewLocation(id kernel.UUID, name string) (*Location, error) {
	l := &Location{guard: guard.NewConstructorGuard()}

	if err := errors.Join(l.setID(id), l.setName(name)); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) ID() kernel.UUID {
	return l.id
}

func (l *Location) Name() string {
	return l.name
}

// Is compares locations by identity, never by name.
func (l *Location) Is(id kernel.UUID) bool {
	return l != nil && l.id.IsEqual(id)
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("location name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("location name length", n, 1, MaxNameLength)
	}
	l.name = name
	return nil
}
