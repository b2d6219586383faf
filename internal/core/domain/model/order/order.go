package order

import (
	"errors"
	"fmt"
	"time"

	"requisitions/internal/core/domain/model/cart"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/errs"
	"requisitions/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrSameOriginAndDestination = errs.NewValueIsInvalidErrorWithCause(
		"destination", errors.New("origin and destination must be different locations"))
)

// Order is a requisition raised by the origin branch and fulfilled by the
// destination branch. It is the aggregate root of the lifecycle engine.
//
// Order follows these invariants:
//   - id, creator, origin and destination are valid identifiers
//   - origin differs from destination
//   - it holds at least one item, one per product, each with a positive quantity
//   - status is always a valid lifecycle state and only moves forward
//   - completedAt is set exactly when the status is OriginReceived
//
// Every transition appends a HistoryEntry to Changes. The application layer
// records those entries in the status history within the same transaction
// that persists the order.
type Order struct {
	id          kernel.UUID
	createdBy   kernel.UUID
	origin      kernel.UUID
	destination kernel.UUID
	status      Status
	createdAt   time.Time
	completedAt *time.Time
	items       []Item

	// loadedStatus is the status the order had when it was read from
	// persistence (Unknown for new orders). Updates are conditional on it.
	loadedStatus Status
	changes      []HistoryEntry

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Created status from the submitted cart.
// The returned order already carries the Created history entry in Changes.
//
// Errors:
//   - cart.ErrCartIsEmpty if the cart has no lines
//   - ErrSameOriginAndDestination if both branches are the same
//   - identifier validation errors
func NewOrder(
	id, createdBy, origin, destination kernel.UUID,
	c cart.Cart,
	now time.Time,
) (*Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, cart.ErrCartIsEmpty
	}

	items := make([]Item, 0, c.Len())
	for _, line := range c.Lines() {
		item, err := NewItem(line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o, err := build(id, createdBy, origin, destination, Created, now, nil, items)
	if err != nil {
		return nil, err
	}

	entry, err := NewHistoryEntry(o.id, Created, o.createdAt, createdBy)
	if err != nil {
		return nil, err
	}
	o.changes = append(o.changes, entry)

	return o, nil
}

// RestoreOrder rebuilds an order read from persistence. It enforces the same
// invariants as NewOrder and records no changes.
func RestoreOrder(
	id, createdBy, origin, destination kernel.UUID,
	status Status,
	createdAt time.Time,
	completedAt *time.Time,
	items []Item,
) (*Order, error) {
	o, err := build(id, createdBy, origin, destination, status, createdAt, completedAt, items)
	if err != nil {
		return nil, err
	}
	o.loadedStatus = status
	return o, nil
}

func build(
	id, createdBy, origin, destination kernel.UUID,
	status Status,
	createdAt time.Time,
	completedAt *time.Time,
	items []Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		createdBy.Validate(),
		origin.Validate(),
		destination.Validate(),
		status.Validate(),
		validateItems(items),
	); err != nil {
		return nil, err
	}
	if origin.IsEqual(destination) {
		return nil, ErrSameOriginAndDestination
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}
	if (completedAt != nil) != status.IsFinal() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"completed at", fmt.Errorf("must be set exactly when the order is %s", OriginReceived))
	}

	o := &Order{
		id:          id,
		createdBy:   createdBy,
		origin:      origin,
		destination: destination,
		status:      status,
		createdAt:   createdAt.UTC(),
		items:       append([]Item(nil), items...),
		guard:       guard.NewConstructorGuard(),
	}
	if completedAt != nil {
		at := completedAt.UTC()
		o.completedAt = &at
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// Origin is the requesting branch.
func (o *Order) Origin() kernel.UUID {
	return o.origin
}

// Destination is the fulfilling branch.
func (o *Order) Destination() kernel.UUID {
	return o.destination
}

func (o *Order) Status() Status {
	return o.status
}

// LoadedStatus is the status the order had when it was read from persistence.
func (o *Order) LoadedStatus() Status {
	return o.loadedStatus
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt is nil until the origin confirms receipt.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Items returns a copy of the order lines ordered by product id.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Changes returns the history entries produced since the order was created or loaded.
func (o *Order) Changes() []HistoryEntry {
	return append([]HistoryEntry(nil), o.changes...)
}

// ClearChanges drops the pending history entries once they have been handed over.
func (o *Order) ClearChanges() {
	o.changes = nil
}

// Advance moves the order one step along the destination's part of the
// lifecycle on behalf of actor and returns the new history entry.
// Branch permissions must be checked by the caller beforehand.
func (o *Order) Advance(actor kernel.UUID, now time.Time) (HistoryEntry, error) {
	next, err := o.status.Advance()
	if err != nil {
		return HistoryEntry{}, err
	}
	return o.moveTo(next, actor, now)
}

// ConfirmReceipt records that the origin received a shipped order.
// It sets CompletedAt and returns the final history entry.
func (o *Order) ConfirmReceipt(actor kernel.UUID, now time.Time) (HistoryEntry, error) {
	next, err := o.status.ConfirmReceipt()
	if err != nil {
		return HistoryEntry{}, err
	}
	return o.moveTo(next, actor, now)
}

func (o *Order) moveTo(next Status, actor kernel.UUID, now time.Time) (HistoryEntry, error) {
	entry, err := NewHistoryEntry(o.id, next, now, actor)
	if err != nil {
		return HistoryEntry{}, err
	}

	o.status = next
	if next.IsFinal() {
		at := entry.ChangedAt()
		o.completedAt = &at
	}
	o.changes = append(o.changes, entry)
	return entry, nil
}
