package queries

import (
	"errors"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/guard"
)

var (
	ErrGetRequisitionsQueryIsNotConstructed = errors.New(
		"GetRequisitionsQuery must be created via NewGetRequisitionsQuery constructor",
	)
	ErrGetRequisitionQueryIsNotConstructed = errors.New(
		"GetRequisitionQuery must be created via NewGetRequisitionQuery constructor",
	)
)

// GetRequisitionsQuery lists the whole catalog ordered by requisition name.
// This is a parameterless query.
type GetRequisitionsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetRequisitionsQuery() GetRequisitionsQuery {
	return GetRequisitionsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetRequisitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetRequisitionsQueryIsNotConstructed)
}

type GetRequisitionsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Description  string
	ProductCount int
}

// GetRequisitionQuery fetches one requisition with its products.
//
// Example:
//
//	query, err := NewGetRequisitionQuery(requisitionID)
//	if err != nil {
//	    return err
//	}
//	requisition, err := handler.Handle(ctx, query)
//	for _, p := range requisition.Products {
//	    fmt.Println(p.Name)
//	}
type GetRequisitionQuery struct {
	requisitionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRequisitionQuery(requisitionID kernel.UUID) (GetRequisitionQuery, error) {
	if err := requisitionID.Validate(); err != nil {
		return GetRequisitionQuery{}, err
	}
	return GetRequisitionQuery{requisitionID: requisitionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRequisitionQuery) Validate() error {
	return q.guard.Validate(ErrGetRequisitionQueryIsNotConstructed)
}

func (q GetRequisitionQuery) RequisitionID() kernel.UUID {
	return q.requisitionID
}

// GetRequisitionQueryResponse holds the products ordered by name.
type GetRequisitionQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	Products    []ProductView
}

type ProductView struct {
	ID   kernel.UUID
	Name string
}
