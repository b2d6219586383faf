package queries

import (
	"errors"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/errs"
	"requisitions/internal/pkg/guard"
)

const (
	DefaultDashboardDays = 30
	MaxDashboardDays     = 366
	TopProductsLimit     = 5
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery summarises the activity of the actor's branch over the
// last Days days.
type GetDashboardQuery struct {
	actorID kernel.UUID
	days    int

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery uses DefaultDashboardDays when days is zero.
func NewGetDashboardQuery(actorID kernel.UUID, days int) (GetDashboardQuery, error) {
	if days == 0 {
		days = DefaultDashboardDays
	}
	if err := errors.Join(actorID.Validate(), validateDays(days)); err != nil {
		return GetDashboardQuery{}, err
	}

	return GetDashboardQuery{actorID: actorID, days: days, guard: guard.NewConstructorGuard()}, nil
}

func validateDays(days int) error {
	if days < 1 || days > MaxDashboardDays {
		return errs.NewValueIsOutOfRangeError("days", days, 1, MaxDashboardDays)
	}
	return nil
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

func (q GetDashboardQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q GetDashboardQuery) Days() int {
	return q.days
}

// GetDashboardQueryResponse covers orders placed or fulfilled by the branch.
// PendingCount is the number of orders waiting for the branch to receive them.
type GetDashboardQueryResponse struct {
	Since        time.Time
	OrdersPerDay []DailyOrders
	TopProducts  []ProductTotal
	PendingCount int
}

type DailyOrders struct {
	Day   time.Time
	Count int
}

type ProductTotal struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
}
