package billing

import (
	"fixwise/internal/application/billing/usecases"
	"fixwise/internal/domain/access"
)

type CreateInvoiceRequest struct {
	TicketID uint    `json:"ticket_id" binding:"required"`
	Tax      float64 `json:"tax" binding:"min=0"`
	Discount float64 `json:"discount" binding:"min=0"`
	Notes    string  `json:"notes,omitempty" binding:"max=2000"`
}

func (r *CreateInvoiceRequest) ToCommand(actor access.Actor) usecases.CreateInvoiceCommand {
	return usecases.CreateInvoiceCommand{
		Actor:    actor,
		TicketID: r.TicketID,
		Tax:      r.Tax,
		Discount: r.Discount,
		Notes:    r.Notes,
	}
}

type PayInvoiceRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,max=50"`
	PaymentType   string `json:"payment_type,omitempty" binding:"max=50"`
	CheckNumber   string `json:"check_number,omitempty" binding:"max=50"`
}

func (r *PayInvoiceRequest) ToCommand(actor access.Actor, invoiceID uint) usecases.PayInvoiceCommand {
	return usecases.PayInvoiceCommand{
		Actor:         actor,
		InvoiceID:     invoiceID,
		PaymentMethod: r.PaymentMethod,
		PaymentType:   r.PaymentType,
		CheckNumber:   r.CheckNumber,
	}
}
