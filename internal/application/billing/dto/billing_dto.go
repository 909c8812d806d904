package dto

import (
	"time"

	"fixwise/internal/domain/billing"
)

type PartDTO struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Cost     float64 `json:"cost"`
}

type OtherChargeDTO struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

type WorkOrderDTO struct {
	ID               uint             `json:"id"`
	TicketID         uint             `json:"ticket_id"`
	TechnicianID     uint             `json:"technician_id"`
	WorkOrderNumber  int              `json:"work_order_number"`
	Description      string           `json:"description,omitempty"`
	Parts            []PartDTO        `json:"parts"`
	OtherCharges     []OtherChargeDTO `json:"other_charges"`
	TotalCost        float64          `json:"total_cost"`
	TimeIn           string           `json:"time_in,omitempty"`
	TimeOut          string           `json:"time_out,omitempty"`
	TotalHours       float64          `json:"total_hours"`
	CompletionStatus string           `json:"completion_status"`
	CreatedAt        string           `json:"created_at"`
}

type InvoiceDTO struct {
	ID                  uint    `json:"id"`
	InvoiceNumber       string  `json:"invoice_number"`
	TicketID            uint    `json:"ticket_id"`
	MaintenanceVendorID uint    `json:"maintenance_vendor_id"`
	OrganizationID      *uint   `json:"organization_id,omitempty"`
	WorkOrderIDs        []uint  `json:"work_order_ids"`
	Subtotal            float64 `json:"subtotal"`
	Tax                 float64 `json:"tax"`
	Discount            float64 `json:"discount"`
	Total               float64 `json:"total"`
	Notes               string  `json:"notes,omitempty"`
	Status              string  `json:"status"`
	PaymentMethod       string  `json:"payment_method,omitempty"`
	PaymentType         string  `json:"payment_type,omitempty"`
	CheckNumber         string  `json:"check_number,omitempty"`
	IssuedAt            string  `json:"issued_at"`
	PaidAt              *string `json:"paid_at,omitempty"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

func WorkOrderToDTO(wo *billing.WorkOrder) *WorkOrderDTO {
	parts := make([]PartDTO, 0, len(wo.Parts()))
	for _, p := range wo.Parts() {
		parts = append(parts, PartDTO{Name: p.Name, Quantity: p.Quantity, Cost: p.Cost})
	}
	charges := make([]OtherChargeDTO, 0, len(wo.OtherCharges()))
	for _, c := range wo.OtherCharges() {
		charges = append(charges, OtherChargeDTO{Description: c.Description, Cost: c.Cost})
	}
	return &WorkOrderDTO{
		ID:               wo.ID(),
		TicketID:         wo.TicketID(),
		TechnicianID:     wo.TechnicianID(),
		WorkOrderNumber:  wo.WorkOrderNumber(),
		Description:      wo.Description(),
		Parts:            parts,
		OtherCharges:     charges,
		TotalCost:        wo.TotalCost(),
		TimeIn:           wo.TimeIn(),
		TimeOut:          wo.TimeOut(),
		TotalHours:       wo.TotalHours(),
		CompletionStatus: wo.CompletionStatus().String(),
		CreatedAt:        wo.CreatedAt().Format(time.RFC3339),
	}
}

func InvoiceToDTO(inv *billing.Invoice) *InvoiceDTO {
	var paidAt *string
	if inv.PaidAt() != nil {
		s := inv.PaidAt().Format(time.RFC3339)
		paidAt = &s
	}
	return &InvoiceDTO{
		ID:                  inv.ID(),
		InvoiceNumber:       inv.InvoiceNumber(),
		TicketID:            inv.TicketID(),
		MaintenanceVendorID: inv.MaintenanceVendorID(),
		OrganizationID:      inv.OrganizationID(),
		WorkOrderIDs:        inv.WorkOrderIDs(),
		Subtotal:            inv.Subtotal(),
		Tax:                 inv.Tax(),
		Discount:            inv.Discount(),
		Total:               inv.Total(),
		Notes:               inv.Notes(),
		Status:              inv.Status().String(),
		PaymentMethod:       inv.PaymentMethod(),
		PaymentType:         inv.PaymentType(),
		CheckNumber:         inv.CheckNumber(),
		IssuedAt:            inv.IssuedAt().Format(time.RFC3339),
		PaidAt:              paidAt,
		CreatedAt:           inv.CreatedAt().Format(time.RFC3339),
		UpdatedAt:           inv.UpdatedAt().Format(time.RFC3339),
	}
}
