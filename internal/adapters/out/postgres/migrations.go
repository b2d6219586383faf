package postgres

import (
	"requisitions/internal/adapters/out/postgres/catalogrepo"
	"requisitions/internal/adapters/out/postgres/historyrepo"
	"requisitions/internal/adapters/out/postgres/locationrepo"
	"requisitions/internal/adapters/out/postgres/orderrepo"
	"requisitions/internal/adapters/out/postgres/outboxrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table in dependency order.
func Models() []any {
	return []any{
		&locationrepo.LocationDTO{},
		&locationrepo.BindingDTO{},
		&catalogrepo.RequisitionDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&historyrepo.HistoryDTO{},
		&outboxrepo.MessageDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
