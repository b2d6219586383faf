package queries

import (
	"errors"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/pkg/guard"
)

var ErrGetOrderViewQueryIsNotConstructed = errors.New(
	"GetOrderViewQuery must be created via NewGetOrderViewQuery constructor",
)

// GetOrderViewQuery fetches one order with its items and its status history.
// Only the order's origin and destination branches may read it.
type GetOrderViewQuery struct {
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderViewQuery(orderID, actorID kernel.UUID) (GetOrderViewQuery, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return GetOrderViewQuery{}, err
	}

	return GetOrderViewQuery{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderViewQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderViewQueryIsNotConstructed)
}

func (q GetOrderViewQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderViewQuery) ActorID() kernel.UUID {
	return q.actorID
}

// GetOrderViewQueryResponse is the order detail page. History is oldest first.
// CanAdvance and CanConfirm tell the caller which action the actor may take next.
type GetOrderViewQueryResponse struct {
	ID          kernel.UUID
	CreatedBy   kernel.UUID
	Origin      LocationRef
	Destination LocationRef
	Status      order.Status
	CreatedAt   time.Time
	CompletedAt *time.Time
	Items       []OrderViewItem
	History     []OrderViewHistoryEntry
	CanAdvance  bool
	CanConfirm  bool
}

type OrderViewItem struct {
	ProductID       kernel.UUID
	ProductName     string
	RequisitionID   kernel.UUID
	RequisitionName string
	Quantity        int
}

type OrderViewHistoryEntry struct {
	Status    order.Status
	ChangedAt time.Time
	ChangedBy kernel.UUID
}
