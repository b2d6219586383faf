package catalogrepo

import (
	"time"

	"requisitions/internal/core/domain/model/catalog"
	"requisitions/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RequisitionDTO represents the database model for requisitions
// with a has-many relationship to products.
type RequisitionDTO struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name        string       `gorm:"type:varchar(255);not null;index"`
	Description string       `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time    `gorm:"not null"`
	Products    []ProductDTO `gorm:"foreignKey:RequisitionID;constraint:OnDelete:CASCADE"`
}

func (RequisitionDTO) TableName() string {
	return "requisitions"
}

type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequisitionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(r *catalog.Requisition) RequisitionDTO {
	requisitionID := r.ID().Bytes()
	products := make([]ProductDTO, 0, len(r.Products()))

	for _, p := range r.Products() {
		products = append(products, ProductDTO{
			ID:            p.ID().Bytes(),
			RequisitionID: requisitionID,
			Name:          p.Name(),
		})
	}

	return RequisitionDTO{
		ID:          requisitionID,
		Name:        r.Name(),
		Description: r.Description(),
		CreatedAt:   r.CreatedAt(),
		Products:    products,
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requisitionID, err := kernel.UUIDFromBytes(dto.RequisitionID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewProduct(id, requisitionID, dto.Name)
}
