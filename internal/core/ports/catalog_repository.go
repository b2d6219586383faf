package ports

import (
	"context"

	"requisitions/internal/core/domain/model/catalog"
	"requisitions/internal/core/domain/model/kernel"
)

// CatalogRepository gives access to requisitions and their products.
// The order lifecycle only reads from it.
type CatalogRepository interface {
	// Add stores a requisition together with its products.
	Add(ctx context.Context, r *catalog.Requisition) error

	// GetProducts returns the products among ids that exist. Missing ids are
	// simply absent from the result.
	GetProducts(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)
}
