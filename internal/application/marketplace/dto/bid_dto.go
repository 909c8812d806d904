package dto

import (
	"time"

	"fixwise/internal/domain/marketplace"
)

type BidPartDTO struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Cost     float64 `json:"cost"`
}

type BidDTO struct {
	ID                  uint         `json:"id"`
	TicketID            uint         `json:"ticket_id"`
	MaintenanceVendorID uint         `json:"maintenance_vendor_id"`
	HourlyRate          float64      `json:"hourly_rate"`
	EstimatedHours      float64      `json:"estimated_hours"`
	Parts               []BidPartDTO `json:"parts"`
	TotalAmount         float64      `json:"total_amount"`
	Notes               string       `json:"notes,omitempty"`
	Status              string       `json:"status"`
	Approved            bool         `json:"approved"`
	CounterOffer        *float64     `json:"counter_offer,omitempty"`
	CounterNotes        string       `json:"counter_notes,omitempty"`
	RejectionReason     string       `json:"rejection_reason,omitempty"`
	Version             int          `json:"version"`
	PreviousBidID       *uint        `json:"previous_bid_id,omitempty"`
	SupersededByBidID   *uint        `json:"superseded_by_bid_id,omitempty"`
	IsSuperseded        bool         `json:"is_superseded"`
	CreatedAt           string       `json:"created_at"`
	UpdatedAt           string       `json:"updated_at"`
}

func BidToDTO(b *marketplace.Bid) *BidDTO {
	parts := make([]BidPartDTO, 0, len(b.Parts()))
	for _, p := range b.Parts() {
		parts = append(parts, BidPartDTO{Name: p.Name, Quantity: p.Quantity, Cost: p.Cost})
	}
	return &BidDTO{
		ID:                  b.ID(),
		TicketID:            b.TicketID(),
		MaintenanceVendorID: b.MaintenanceVendorID(),
		HourlyRate:          b.HourlyRate(),
		EstimatedHours:      b.EstimatedHours(),
		Parts:               parts,
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
		CreatedAt:           b.CreatedAt().Format(time.RFC3339),
		UpdatedAt:           b.UpdatedAt().Format(time.RFC3339),
	}
}
