package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"fixwise/internal/domain/ticket"
	"fixwise/internal/infrastructure/persistence/mappers"
	"fixwise/internal/infrastructure/persistence/models"
	"fixwise/internal/shared/db"
	"fixwise/internal/shared/errors"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":         true,
	"number":     true,
	"title":      true,
	"status":     true,
	"priority":   true,
	"created_at": true,
	"updated_at": true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// Update writes the ticket back with an optimistic version precondition. The
// in-memory aggregate has already bumped its version, so the row must still
// hold the previous one; zero affected rows means a concurrent transition
// won the race.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError(fmt.Sprintf("ticket %d was modified concurrently", model.ID))
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filters.Status != nil {
		query = query.Where("status = ?", filters.Status.String())
	}
	if filters.Priority != nil {
		query = query.Where("priority = ?", filters.Priority.String())
	}
	if filters.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filters.OrganizationID)
	}
	if filters.MaintenanceVendorID != nil {
		query = query.Where("maintenance_vendor_id = ?", *filters.MaintenanceVendorID)
	}
	if filters.ReporterID != nil {
		query = query.Where("reporter_id = ?", *filters.ReporterID)
	}
	if filters.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filters.AssigneeID)
	}
	if len(filters.LocationIDs) > 0 {
		query = query.Where("location_id IN ?", filters.LocationIDs)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = query.Order(ticketOrderClause(filters.SortBy, filters.SortOrder))

	if filters.PageSize > 0 {
		offset := (filters.Page - 1) * filters.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filters.PageSize)
	}

	var rows []models.TicketModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func ticketOrderClause(sortBy, sortOrder string) string {
	field := strings.ToLower(sortBy)
	if !allowedTicketOrderByFields[field] {
		field = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		order = "ASC"
	}
	return fmt.Sprintf("%s %s", field, order)
}
