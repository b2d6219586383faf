package commands

import (
	"errors"
	"time"

	"requisitions/internal/core/domain/model/catalog"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/guard"
)

var ErrCreateRequisitionCommandIsNotConstructed = errors.New(
	"CreateRequisitionCommand must be created via NewCreateRequisitionCommand constructor",
)

// CreateRequisitionCommand adds a requisition and its products to the catalog.
type CreateRequisitionCommand struct { //nolint:recvcheck //using for validation
	requisition *catalog.Requisition

	guard guard.ConstructorGuard
}

// NewCreateRequisitionCommand builds the requisition with one new product per name.
func NewCreateRequisitionCommand(
	id kernel.UUID,
	name, description string,
	productNames []string,
) (CreateRequisitionCommand, error) {
	if err := id.Validate(); err != nil {
		return CreateRequisitionCommand{}, err
	}

	products := make([]*catalog.Product, 0, len(productNames))
	for _, productName := range productNames {
		p, err := catalog.NewProduct(kernel.NewUUID(), id, productName)
		if err != nil {
			return CreateRequisitionCommand{}, err
		}
		products = append(products, p)
	}

	r, err := catalog.NewRequisition(id, name, description, time.Now().UTC(), products)
	if err != nil {
		return CreateRequisitionCommand{}, err
	}

	return CreateRequisitionCommand{requisition: r, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateRequisitionCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequisitionCommandIsNotConstructed)
}

func (c CreateRequisitionCommand) Requisition() *catalog.Requisition {
	return c.requisition
}
