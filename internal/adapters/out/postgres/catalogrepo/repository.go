package catalogrepo

import (
	"context"

	"requisitions/internal/core/domain/model/catalog"
	"requisitions/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Add stores the requisition and its products in one statement batch.
func (r *GormCatalogRepository) Add(ctx context.Context, requisition *catalog.Requisition) error {
	if err := requisition.Validate(); err != nil {
		return err
	}

	dto := fromDomain(requisition)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCatalogRepository) GetProducts(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.String())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).
		Where("id = ANY(?)", pq.Array(raw)).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
