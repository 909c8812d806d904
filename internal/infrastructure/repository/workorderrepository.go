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

type WorkOrderRepository struct {
	db     *gorm.DB
	mapper mappers.BillingMapper
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{
		db:     db,
		mapper: mappers.NewBillingMapper(),
	}
}

func (r *WorkOrderRepository) Save(ctx context.Context, wo *billing.WorkOrder) error {
	model := r.mapper.WorkOrderToModel(wo)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save work order: %w", err)
	}

	return wo.SetID(model.ID)
}

func (r *WorkOrderRepository) GetByID(ctx context.Context, workOrderID uint) (*billing.WorkOrder, error) {
	var model models.WorkOrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, workOrderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("work order not found")
		}
		return nil, fmt.Errorf("failed to find work order: %w", err)
	}

	return r.mapper.WorkOrderToDomain(&model)
}

func (r *WorkOrderRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*billing.WorkOrder, error) {
	var rows []models.WorkOrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}

	workOrders := make([]*billing.WorkOrder, 0, len(rows))
	for i := range rows {
		wo, err := r.mapper.WorkOrderToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		workOrders = append(workOrders, wo)
	}

	return workOrders, nil
}

func (r *WorkOrderRepository) CountByTicketID(ctx context.Context, ticketID uint) (int, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.WorkOrderModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count work orders: %w", err)
	}

	return int(count), nil
}
