package locationrepo

import (
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO represents the database model for branches.
type LocationDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(60);not null;uniqueIndex"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

// BindingDTO represents the database model for user to branch bindings.
// A NULL location_id is a user awaiting setup.
type BindingDTO struct {
	UserID     uuid.UUID    `gorm:"type:uuid;primaryKey"`
	LocationID *uuid.UUID   `gorm:"type:uuid;index"`
	Location   *LocationDTO `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`
	UpdatedAt  time.Time    `gorm:"not null"`
}

func (BindingDTO) TableName() string {
	return "user_locations"
}

func fromDomain(l *location.Location) LocationDTO {
	return LocationDTO{
		ID:   l.ID().Bytes(),
		Name: l.Name(),
	}
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return location.NewLocation(id, dto.Name)
}

func bindingFromDomain(b *location.Binding) BindingDTO {
	dto := BindingDTO{UserID: b.UserID().Bytes()}
	if locationID, err := b.LocationID(); err == nil {
		raw := locationID.Bytes()
		dto.LocationID = &raw
	}
	return dto
}

func bindingToDomain(dto BindingDTO) (*location.Binding, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var locationID *kernel.UUID
	if dto.LocationID != nil {
		lID, locationErr := kernel.UUIDFromBytes((*dto.LocationID)[:])
		if locationErr != nil {
			return nil, locationErr
		}
		locationID = &lID
	}

	return location.RestoreBinding(userID, locationID)
}
