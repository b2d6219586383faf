// Package historyrepo persists the order status audit log.
package historyrepo

import (
	"context"
	"errors"
	"time"

	"requisitions/internal/adapters/out/postgres/orderrepo"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryDTO is one row of order_status_history. The sequential ID breaks
// ties between entries recorded within the same instant.
// The (order_id, status) unique index rejects a status recorded twice.
type HistoryDTO struct {
	ID        int64               `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:ux_order_status_history_order_status,priority:1"`
	Order     *orderrepo.OrderDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Status    string              `gorm:"type:varchar(32);not null;uniqueIndex:ux_order_status_history_order_status,priority:2"`
	ChangedAt time.Time           `gorm:"not null"`
	ChangedBy uuid.UUID           `gorm:"type:uuid;not null"`
}

func (HistoryDTO) TableName() string {
	return "order_status_history"
}

type GormStatusHistoryRepository struct {
	db *gorm.DB
}

func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

func (r *GormStatusHistoryRepository) Record(ctx context.Context, entry order.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := HistoryDTO{
		OrderID:   entry.OrderID().Bytes(),
		Status:    entry.Status().String(),
		ChangedAt: entry.ChangedAt(),
		ChangedBy: entry.ChangedBy().Bytes(),
	}
	err := r.db.WithContext(ctx).Create(&dto).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewInvalidTransitionError(entry.Status().String(), "record "+entry.Status().String()+" again")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewObjectNotFoundErrorWithCause("order", entry.OrderID().String(), err)
	}

	return err
}

// HistoryFor returns the order's entries oldest first. The order view in
// queries reads the same rows with its own SQL and keeps this ordering.
func (r *GormStatusHistoryRepository) HistoryFor(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("changed_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]order.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func toDomain(dto HistoryDTO) (order.HistoryEntry, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}
	changedBy, err := kernel.UUIDFromBytes(dto.ChangedBy[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.NewHistoryEntry(orderID, status, dto.ChangedAt, changedBy)
}
