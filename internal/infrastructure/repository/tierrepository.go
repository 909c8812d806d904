package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixwise/internal/domain/vendorentity"
	vo "fixwise/internal/domain/vendorentity/valueobjects"
	"fixwise/internal/infrastructure/persistence/mappers"
	"fixwise/internal/infrastructure/persistence/models"
	"fixwise/internal/shared/db"
	"fixwise/internal/shared/errors"
)

type TierRepository struct {
	db     *gorm.DB
	mapper mappers.VendorMapper
}

func NewTierRepository(db *gorm.DB) *TierRepository {
	return &TierRepository{
		db:     db,
		mapper: mappers.NewVendorMapper(),
	}
}

func (r *TierRepository) Save(ctx context.Context, t *vendor.OrganizationTier) error {
	model := r.mapper.TierToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save organization tier: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TierRepository) Update(ctx context.Context, t *vendor.OrganizationTier) error {
	model := r.mapper.TierToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.OrganizationTierModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update organization tier: %w", result.Error)
	}

	return nil
}

func (r *TierRepository) GetActive(ctx context.Context, vendorID, organizationID uint) (*vendor.OrganizationTier, error) {
	var model models.OrganizationTierModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("maintenance_vendor_id = ? AND organization_id = ? AND active = ?", vendorID, organizationID, true).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("organization tier not found")
		}
		return nil, fmt.Errorf("failed to find organization tier: %w", err)
	}

	return r.mapper.TierToDomain(&model)
}

func (r *TierRepository) GetByVendorID(ctx context.Context, vendorID uint) ([]*vendor.OrganizationTier, error) {
	var rows []models.OrganizationTierModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("maintenance_vendor_id = ?", vendorID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list organization tiers: %w", err)
	}

	tiers := make([]*vendor.OrganizationTier, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.TierToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}

	return tiers, nil
}

func (r *TierRepository) HasActiveMarketplaceTier(ctx context.Context, vendorID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.OrganizationTierModel{}).
		Where("maintenance_vendor_id = ? AND tier = ? AND active = ?", vendorID, vo.TierMarketplace.String(), true).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check marketplace tier: %w", err)
	}

	return count > 0, nil
}
