package valueobjects

import "fmt"

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

var validInvoiceStatuses = map[InvoiceStatus]bool{
	InvoiceStatusDraft:   true,
	InvoiceStatusSent:    true,
	InvoiceStatusPaid:    true,
	InvoiceStatusOverdue: true,
}

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) IsValid() bool {
	return validInvoiceStatuses[s]
}

func (s InvoiceStatus) IsPaid() bool {
	return s == InvoiceStatusPaid
}

// IsPayable reports whether payment can still be recorded.
func (s InvoiceStatus) IsPayable() bool {
	return s == InvoiceStatusDraft || s == InvoiceStatusSent || s == InvoiceStatusOverdue
}

func NewInvoiceStatus(str string) (InvoiceStatus, error) {
	s := InvoiceStatus(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid invoice status: %s", str)
	}
	return s, nil
}
