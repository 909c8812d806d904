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

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var rows []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.CommentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}
