package orderrepo

import (
	"time"

	"requisitions/internal/adapters/out/postgres/catalogrepo"
	"requisitions/internal/adapters/out/postgres/locationrepo"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database model for orders. Status is stored as its
// upper-snake code. The Origin and Destination associations only declare the
// foreign keys and are never loaded.
type OrderDTO struct {
	ID            uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	CreatedBy     uuid.UUID                 `gorm:"type:uuid;not null"`
	OriginID      uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Origin        *locationrepo.LocationDTO `gorm:"foreignKey:OriginID;constraint:OnDelete:RESTRICT"`
	DestinationID uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Destination   *locationrepo.LocationDTO `gorm:"foreignKey:DestinationID;constraint:OnDelete:RESTRICT"`
	Status        string                    `gorm:"type:varchar(32);not null;index"`
	CreatedAt     time.Time                 `gorm:"not null;index"`
	CompletedAt   *time.Time
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is keyed by (order_id, product_id): an order holds one line per product.
type OrderItemDTO struct {
	OrderID   uuid.UUID               `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID               `gorm:"type:uuid;primaryKey"`
	Product   *catalogrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity  int                     `gorm:"type:int;not null;check:chk_order_items_quantity,quantity > 0"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))

	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		CreatedBy:     o.CreatedBy().Bytes(),
		OriginID:      o.Origin().Bytes(),
		DestinationID: o.Destination().Bytes(),
		Status:        o.Status().String(),
		CreatedAt:     o.CreatedAt(),
		CompletedAt:   o.CompletedAt(),
		Items:         items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.CreatedBy, dto.OriginID, dto.DestinationID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, productErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}
		item, itemErr := order.NewItem(productID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(ids[0], ids[1], ids[2], ids[3], status, dto.CreatedAt, dto.CompletedAt, items)
}
