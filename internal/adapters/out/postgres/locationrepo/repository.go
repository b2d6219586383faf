package locationrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"
	"requisitions/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

func (r *GormLocationRepository) Add(ctx context.Context, l *location.Location) error {
	if err := l.Validate(); err != nil {
		return err
	}

	dto := fromDomain(l)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("location name",
				fmt.Errorf("location %q already exists", l.Name()))
		}
		return err
	}

	return nil
}

func (r *GormLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLocationRepository) GetByName(ctx context.Context, name string) (*location.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("location name")
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLocationRepository) List(ctx context.Context) ([]*location.Location, error) {
	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	locations := make([]*location.Location, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	return locations, nil
}

type GormBindingRepository struct {
	db *gorm.DB
}

func NewGormBindingRepository(db *gorm.DB) *GormBindingRepository {
	return &GormBindingRepository{db: db}
}

func (r *GormBindingRepository) Get(ctx context.Context, userID kernel.UUID) (*location.Binding, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto BindingDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user location", userID.String())
		}
		return nil, err
	}

	return bindingToDomain(dto)
}

func (r *GormBindingRepository) Save(ctx context.Context, b *location.Binding) error {
	if err := b.Validate(); err != nil {
		return err
	}

	dto := bindingFromDomain(b)
	dto.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"location_id", "updated_at"}),
	}).Create(&dto).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		locationID, _ := b.LocationID()
		return errs.NewObjectNotFoundErrorWithCause("location", locationID.String(), err)
	}

	return err
}
