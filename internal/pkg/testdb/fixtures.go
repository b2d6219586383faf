package testdb

import (
	"context"
	"time"

	"requisitions/internal/adapters/out/postgres/catalogrepo"
	"requisitions/internal/adapters/out/postgres/locationrepo"
	"requisitions/internal/core/domain/model/catalog"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"
)

// SeedLocation stores a branch.
func (d *Database) SeedLocation(ctx context.Context, name string) (*location.Location, error) {
	l, err := location.NewLocation(kernel.NewUUID(), name)
	if err != nil {
		return nil, err
	}
	if err := locationrepo.NewGormLocationRepository(d.DB).Add(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// SeedUser binds a new user to the branch and returns the user id.
func (d *Database) SeedUser(ctx context.Context, at *location.Location) (kernel.UUID, error) {
	b, err := location.NewBinding(kernel.NewUUID(), at.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err := locationrepo.NewGormBindingRepository(d.DB).Save(ctx, b); err != nil {
		return kernel.UUID{}, err
	}
	return b.UserID(), nil
}

// SeedRequisition stores a requisition with one product per name.
func (d *Database) SeedRequisition(ctx context.Context, name string, products ...string) (*catalog.Requisition, error) {
	id := kernel.NewUUID()
	items := make([]*catalog.Product, 0, len(products))
	for _, productName := range products {
		p, err := catalog.NewProduct(kernel.NewUUID(), id, productName)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}

	r, err := catalog.NewRequisition(id, name, name+" supplies", time.Now().UTC(), items)
	if err != nil {
		return nil, err
	}
	if err := catalogrepo.NewGormCatalogRepository(d.DB).Add(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
