// Package catalog holds the read-only requisition catalog browsed by the origin
// branch: a Requisition groups Products (e.g. "Mini Pizza" groups its flavours).
package catalog

import (
	"errors"
	"strings"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/errs"
)

var (
	ErrRequisitionIsNotConstructed = errors.New("Requisition must be created via NewRequisition constructor")
	ErrProductIsNotConstructed     = errors.New("Product must be created via NewProduct constructor")
)

// Requisition is a named grouping of products.
type Requisition struct {
	id          kernel.UUID
	name        string
	description string
	createdAt   time.Time
	products    []*Product
}

func NewRequisition(id kernel.UUID, name, description string, createdAt time.Time, products []*Product) (*Requisition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("requisition name")
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.requisitionID.IsEqual(id) {
			return nil, errs.NewValueIsInvalidError("product " + p.id.String() + " belongs to another requisition")
		}
	}

	return &Requisition{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		products:    products,
	}, nil
}

func (r *Requisition) Validate() error {
	if r == nil || r.id.Validate() != nil {
		return ErrRequisitionIsNotConstructed
	}
	return nil
}

func (r *Requisition) ID() kernel.UUID      { return r.id }
func (r *Requisition) Name() string         { return r.name }
func (r *Requisition) Description() string  { return r.description }
func (r *Requisition) CreatedAt() time.Time { return r.createdAt }
func (r *Requisition) Products() []*Product { return append([]*Product(nil), r.products...) }

// Product is a catalog entry an order line can reference.
type Product struct {
	id            kernel.UUID
	requisitionID kernel.UUID
	name          string
}

func NewProduct(id, requisitionID kernel.UUID, name string) (*Product, error) {
	if err := errors.Join(id.Validate(), requisitionID.Validate()); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	return &Product{id: id, requisitionID: requisitionID, name: name}, nil
}

func (p *Product) Validate() error {
	if p == nil || p.id.Validate() != nil {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID            { return p.id }
func (p *Product) RequisitionID() kernel.UUID { return p.requisitionID }
func (p *Product) Name() string               { return p.name }
