package queries

import (
	"context"
	"database/sql"
	"errors"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// actorBinding reads the actor's branch. Users without a binding row and users
// whose binding is empty get location.ErrActorHasNoLocation.
func actorBinding(ctx context.Context, db *gorm.DB, actorID kernel.UUID) (*location.Binding, error) {
	var locationID *uuid.UUID

	err := db.WithContext(ctx).Raw(`
		SELECT location_id
		FROM user_locations
		WHERE user_id = ?
	`, actorID.Bytes()).Row().Scan(&locationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, location.ErrActorHasNoLocation
	}
	if err != nil {
		return nil, err
	}
	if locationID == nil {
		return nil, location.ErrActorHasNoLocation
	}

	id, err := kernel.UUIDFromGoogle(*locationID)
	if err != nil {
		return nil, err
	}
	return location.NewBinding(actorID, id)
}

// actorLocation is actorBinding reduced to the location id.
func actorLocation(ctx context.Context, db *gorm.DB, actorID kernel.UUID) (kernel.UUID, error) {
	binding, err := actorBinding(ctx, db, actorID)
	if err != nil {
		return kernel.UUID{}, err
	}
	return binding.LocationID()
}

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
