package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fixwise/internal/domain/marketplace"
	vo "fixwise/internal/domain/marketplace/valueobjects"
	"fixwise/internal/infrastructure/persistence/mappers"
	"fixwise/internal/infrastructure/persistence/models"
	"fixwise/internal/shared/db"
	"fixwise/internal/shared/errors"
)

// openBidStatuses are the states in which a bid still participates in
// the negotiation on a listing.
var openBidStatuses = []string{
	vo.BidStatusPending.String(),
	vo.BidStatusCountered.String(),
}

type BidRepository struct {
	db     *gorm.DB
	mapper mappers.BidMapper
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{
		db:     db,
		mapper: mappers.NewBidMapper(),
	}
}

func (r *BidRepository) Save(ctx context.Context, b *marketplace.Bid) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save bid: %w", err)
	}

	return b.SetID(model.ID)
}

func (r *BidRepository) Update(ctx context.Context, b *marketplace.Bid) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BidModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update bid: %w", result.Error)
	}

	return nil
}

func (r *BidRepository) GetByID(ctx context.Context, bidID uint) (*marketplace.Bid, error) {
	var model models.BidModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, bidID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("bid not found")
		}
		return nil, fmt.Errorf("failed to find bid: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BidRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*marketplace.Bid, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	return r.listBids(tx.Where("ticket_id = ?", ticketID))
}

func (r *BidRepository) GetActiveByTicketAndVendor(ctx context.Context, ticketID, vendorID uint) (*marketplace.Bid, error) {
	var model models.BidModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ? AND maintenance_vendor_id = ? AND is_superseded = ?", ticketID, vendorID, false).
		Where("status IN ?", openBidStatuses).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("bid not found")
		}
		return nil, fmt.Errorf("failed to find bid: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BidRepository) GetActiveByTicketID(ctx context.Context, ticketID uint) ([]*marketplace.Bid, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	return r.listBids(tx.
		Where("ticket_id = ? AND is_superseded = ?", ticketID, false).
		Where("status IN ?", openBidStatuses))
}

func (r *BidRepository) listBids(query *gorm.DB) ([]*marketplace.Bid, error) {
	var rows []models.BidModel
	if err := query.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}

	bids := make([]*marketplace.Bid, 0, len(rows))
	for i := range rows {
		b, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}

	return bids, nil
}
