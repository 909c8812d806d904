package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"fixwise/internal/domain/marketplace"
	vo "fixwise/internal/domain/marketplace/valueobjects"
	"fixwise/internal/infrastructure/persistence/models"
)

type BidMapper interface {
	ToModel(b *marketplace.Bid) *models.BidModel
	ToDomain(model *models.BidModel) (*marketplace.Bid, error)
}

type BidMapperImpl struct{}

func NewBidMapper() BidMapper {
	return &BidMapperImpl{}
}

func (m *BidMapperImpl) ToModel(b *marketplace.Bid) *models.BidModel {
	model := &models.BidModel{
		ID:                  b.ID(),
		TicketID:            b.TicketID(),
		MaintenanceVendorID: b.MaintenanceVendorID(),
		HourlyRate:          b.HourlyRate(),
		EstimatedHours:      b.EstimatedHours(),
		TotalAmount:         b.TotalAmount(),
		Notes:               b.Notes(),
		Status:              b.Status().String(),
		Approved:            b.IsApproved(),
		CounterOffer:        b.CounterOffer(),
		CounterNotes:        b.CounterNotes(),
		RejectionReason:     b.RejectionReason(),
		Version:             b.Version(),
		PreviousBidID:       b.PreviousBidID(),
		SupersededByBidID:   b.SupersededByBidID(),
		IsSuperseded:        b.IsSuperseded(),
		CreatedAt:           b.CreatedAt().UnixMilli(),
		UpdatedAt:           b.UpdatedAt().UnixMilli(),
	}

	if parts := b.Parts(); len(parts) > 0 {
		partsJSON, _ := json.Marshal(parts)
		model.Parts = datatypes.JSON(partsJSON)
	}

	return model
}

func (m *BidMapperImpl) ToDomain(model *models.BidModel) (*marketplace.Bid, error) {
	status, err := vo.NewBidStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid bid status (id=%d): %w", model.ID, err)
	}

	var parts []marketplace.BidPart
	if len(model.Parts) > 0 {
		if err := json.Unmarshal(model.Parts, &parts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bid parts (id=%d): %w", model.ID, err)
		}
	}

	return marketplace.ReconstructBid(
		model.ID,
		model.TicketID,
		model.MaintenanceVendorID,
		model.HourlyRate,
		model.EstimatedHours,
		parts,
		model.TotalAmount,
		model.Notes,
		status,
		model.Approved,
		model.CounterOffer,
		model.CounterNotes,
		model.RejectionReason,
		model.Version,
		model.PreviousBidID,
		model.SupersededByBidID,
		model.IsSuperseded,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
