// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the HTTP adapter and never modify data.
package queries

import (
	"errors"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders the actor's branch takes part in, either as
// origin or as destination.
//
// Example:
//
//	query, err := NewListOrdersQuery(actorID, true)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	actorID    kernel.UUID
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates the query. With activeOnly set, orders already
// received by their origin are left out.
func NewListOrdersQuery(actorID kernel.UUID, activeOnly bool) (ListOrdersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actorID:    actorID,
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q ListOrdersQuery) ActiveOnly() bool {
	return q.activeOnly
}

// LocationRef names a branch in read models.
type LocationRef struct {
	ID   kernel.UUID
	Name string
}

// ListOrdersQueryResponse is one row of the order list.
// Direction tells whether the actor's branch placed the order or fulfils it.
type ListOrdersQueryResponse struct {
	ID            kernel.UUID
	Origin        LocationRef
	Destination   LocationRef
	Status        order.Status
	CreatedAt     time.Time
	CompletedAt   *time.Time
	ItemCount     int
	TotalQuantity int
	Direction     Direction
}

type Direction string

const (
	DirectionOutgoing Direction = "outgoing"
	DirectionIncoming Direction = "incoming"
)
