package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixwise/internal/domain/billing"
	"fixwise/internal/infrastructure/persistence/mappers"
	"fixwise/internal/infrastructure/persistence/models"
	"fixwise/internal/shared/db"
	"fixwise/internal/shared/errors"
)

type InvoiceRepository struct {
	db     *gorm.DB
	mapper mappers.BillingMapper
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db:     db,
		mapper: mappers.NewBillingMapper(),
	}
}

func (r *InvoiceRepository) Save(ctx context.Context, inv *billing.Invoice) error {
	model := r.mapper.InvoiceToModel(inv)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}

	return inv.SetID(model.ID)
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *billing.Invoice) error {
	model := r.mapper.InvoiceToModel(inv)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InvoiceModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update invoice: %w", result.Error)
	}

	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, invoiceID uint) (*billing.Invoice, error) {
	var model models.InvoiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, invoiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("invoice not found")
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}

	return r.mapper.InvoiceToDomain(&model)
}

func (r *InvoiceRepository) GetByTicketID(ctx context.Context, ticketID uint) (*billing.Invoice, error) {
	var model models.InvoiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("invoice not found")
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}

	return r.mapper.InvoiceToDomain(&model)
}

func (r *InvoiceRepository) List(ctx context.Context, filters billing.InvoiceFilter) ([]*billing.Invoice, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InvoiceModel{})

	if filters.MaintenanceVendorID != nil {
		query = query.Where("maintenance_vendor_id = ?", *filters.MaintenanceVendorID)
	}
	if filters.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filters.OrganizationID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	var rows []models.InvoiceModel
	offset := (filters.Page - 1) * filters.PageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filters.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	invoices := make([]*billing.Invoice, 0, len(rows))
	for i := range rows {
		inv, err := r.mapper.InvoiceToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, total, nil
}
