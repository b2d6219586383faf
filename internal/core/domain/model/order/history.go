package order

import (
	"errors"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/errs"
	"requisitions/internal/pkg/guard"
)

var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry records that an order was put into a status, when and by whom.
// Entries are append-only: nothing in the system updates or deletes them.
type HistoryEntry struct {
	orderID   kernel.UUID
	status    Status
	changedAt time.Time
	changedBy kernel.UUID
	guard     guard.ConstructorGuard
}

// NewHistoryEntry validates and builds an entry. It is also used to restore
// entries read from persistence.
func NewHistoryEntry(orderID kernel.UUID, status Status, changedAt time.Time, changedBy kernel.UUID) (HistoryEntry, error) {
	if err := errors.Join(orderID.Validate(), status.Validate(), changedBy.Validate()); err != nil {
		return HistoryEntry{}, err
	}
	if changedAt.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("changed at")
	}

	return HistoryEntry{
		orderID:   orderID,
		status:    status,
		changedAt: changedAt.UTC(),
		changedBy: changedBy,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (h HistoryEntry) Validate() error {
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

func (h HistoryEntry) OrderID() kernel.UUID {
	return h.orderID
}

func (h HistoryEntry) Status() Status {
	return h.status
}

func (h HistoryEntry) ChangedAt() time.Time {
	return h.changedAt
}

func (h HistoryEntry) ChangedBy() kernel.UUID {
	return h.changedBy
}
