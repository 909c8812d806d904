package marketplace

import (
	"fixwise/internal/application/marketplace/usecases"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/marketplace"
)

type BidPartRequest struct {
	Name     string  `json:"name" binding:"required,max=200"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Cost     float64 `json:"cost" binding:"min=0"`
}

type SubmitBidRequest struct {
	TicketID       uint             `json:"ticket_id" binding:"required"`
	HourlyRate     float64          `json:"hourly_rate" binding:"required,gt=0"`
	EstimatedHours float64          `json:"estimated_hours" binding:"required,gt=0"`
	Parts          []BidPartRequest `json:"parts,omitempty"`
	TotalAmount    float64          `json:"total_amount" binding:"required,gt=0"`
	Notes          string           `json:"notes,omitempty" binding:"max=2000"`
}

func (r *SubmitBidRequest) ToCommand(actor access.Actor) usecases.SubmitBidCommand {
	parts := make([]marketplace.BidPart, 0, len(r.Parts))
	for _, p := range r.Parts {
		parts = append(parts, marketplace.BidPart{Name: p.Name, Quantity: p.Quantity, Cost: p.Cost})
	}
	return usecases.SubmitBidCommand{
		Actor:          actor,
		TicketID:       r.TicketID,
		HourlyRate:     r.HourlyRate,
		EstimatedHours: r.EstimatedHours,
		Parts:          parts,
		TotalAmount:    r.TotalAmount,
		Notes:          r.Notes,
	}
}

type AcceptBidRequest struct {
	TicketID uint `json:"ticket_id" binding:"required"`
}

type CounterBidRequest struct {
	TicketID uint    `json:"ticket_id" binding:"required"`
	Offer    float64 `json:"offer" binding:"required,gt=0"`
	Notes    string  `json:"notes,omitempty" binding:"max=2000"`
}

type RejectBidRequest struct {
	TicketID uint   `json:"ticket_id" binding:"required"`
	Reason   string `json:"reason,omitempty" binding:"max=500"`
}
