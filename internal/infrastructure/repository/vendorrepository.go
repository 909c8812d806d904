package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixwise/internal/domain/vendorentity"
	"fixwise/internal/infrastructure/persistence/mappers"
	"fixwise/internal/infrastructure/persistence/models"
	"fixwise/internal/shared/db"
	"fixwise/internal/shared/errors"
)

type VendorRepository struct {
	db     *gorm.DB
	mapper mappers.VendorMapper
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{
		db:     db,
		mapper: mappers.NewVendorMapper(),
	}
}

func (r *VendorRepository) Save(ctx context.Context, v *vendor.MaintenanceVendor) error {
	model := r.mapper.ToModel(v)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save maintenance vendor: %w", err)
	}

	return v.SetID(model.ID)
}

func (r *VendorRepository) Update(ctx context.Context, v *vendor.MaintenanceVendor) error {
	model := r.mapper.ToModel(v)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MaintenanceVendorModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update maintenance vendor: %w", result.Error)
	}

	return nil
}

func (r *VendorRepository) GetByID(ctx context.Context, vendorID uint) (*vendor.MaintenanceVendor, error) {
	var model models.MaintenanceVendorModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, vendorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("maintenance vendor not found")
		}
		return nil, fmt.Errorf("failed to find maintenance vendor: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *VendorRepository) List(ctx context.Context, page, pageSize int) ([]*vendor.MaintenanceVendor, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.MaintenanceVendorModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count maintenance vendors: %w", err)
	}

	var rows []models.MaintenanceVendorModel
	offset := (page - 1) * pageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list maintenance vendors: %w", err)
	}

	vendors := make([]*vendor.MaintenanceVendor, 0, len(rows))
	for i := range rows {
		v, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		vendors = append(vendors, v)
	}

	return vendors, total, nil
}
