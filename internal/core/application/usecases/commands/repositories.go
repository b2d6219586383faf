// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"requisitions/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	HistoryRepoFactory interface {
		StatusHistoryRepository() ports.StatusHistoryRepository
	}

	BindingRepoFactory interface {
		BindingRepository() ports.BindingRepository
	}

	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// LifecycleUoW moves existing orders through their statuses.
	// The status update and the history entry share one transaction.
	LifecycleUoW interface {
		TxManager
		BindingRepoFactory
		OrderRepoFactory
		HistoryRepoFactory
	}

	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// OrderingUoW submits new orders. Besides the lifecycle repositories it
	// reads the branch directory and the catalog.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   products, err := uow.CatalogRepository().GetProducts(ctx, ids)
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.StatusHistoryRepository().Record(ctx, entry)
	//
	//   err = uow.Commit(ctx)
	OrderingUoW interface {
		LifecycleUoW
		LocationRepoFactory
		CatalogRepoFactory
	}

	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// DirectoryUoW administers branches, user bindings and the catalog.
	DirectoryUoW interface {
		TxManager
		LocationRepoFactory
		BindingRepoFactory
		CatalogRepoFactory
	}

	DirectoryUoWFactory interface {
		Create() DirectoryUoW
	}

	// OutboxUoW relays pending notifications.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
