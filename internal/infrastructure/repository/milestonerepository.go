package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixwise/internal/domain/ticket"
	"fixwise/internal/infrastructure/persistence/mappers"
	"fixwise/internal/infrastructure/persistence/models"
	"fixwise/internal/shared/db"
)

// MilestoneRepository is append-only storage for the ticket audit trail.
type MilestoneRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *MilestoneRepository) Save(ctx context.Context, m *ticket.Milestone) error {
	model := r.mapper.MilestoneToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save milestone: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MilestoneRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Milestone, error) {
	var rows []models.MilestoneModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	milestones := make([]*ticket.Milestone, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.MilestoneToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}

	return milestones, nil
}
