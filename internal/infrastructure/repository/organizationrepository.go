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

type OrganizationRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{
		db:     db,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *OrganizationRepository) Save(ctx context.Context, org *organization.Organization) error {
	model := r.mapper.ToModel(org)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save organization: %w", err)
	}

	return org.SetID(model.ID)
}

func (r *OrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	model := r.mapper.ToModel(org)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.OrganizationModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}

	return nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, orgID uint) (*organization.Organization, error) {
	var model models.OrganizationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, orgID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("organization not found")
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *OrganizationRepository) List(ctx context.Context, page, pageSize int) ([]*organization.Organization, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.OrganizationModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	var rows []models.OrganizationModel
	offset := (page - 1) * pageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}

	orgs := make([]*organization.Organization, 0, len(rows))
	for i := range rows {
		org, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		orgs = append(orgs, org)
	}

	return orgs, total, nil
}
