package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixwise/internal/domain/organization"
	"fixwise/internal/infrastructure/persistence/mappers"
	"fixwise/internal/infrastructure/persistence/models"
	"fixwise/internal/shared/db"
	"fixwise/internal/shared/errors"
)

type LocationRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{
		db:     db,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *LocationRepository) Save(ctx context.Context, l *organization.Location) error {
	model := r.mapper.LocationToModel(l)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}

	return l.SetID(model.ID)
}

func (r *LocationRepository) GetByID(ctx context.Context, locationID uint) (*organization.Location, error) {
	var model models.LocationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, locationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("location not found")
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}

	return r.mapper.LocationToDomain(&model)
}

func (r *LocationRepository) GetByOrganizationID(ctx context.Context, orgID uint) ([]*organization.Location, error) {
	var rows []models.LocationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("organization_id = ?", orgID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	locations := make([]*organization.Location, 0, len(rows))
	for i := range rows {
		l, err := r.mapper.LocationToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	return locations, nil
}
