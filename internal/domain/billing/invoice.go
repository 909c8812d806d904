package billing

import (
	"fmt"
	"time"

	vo "fixwise/internal/domain/billing/valueobjects"
)

// Invoice bills every work order of one ticket in a single document. The
// workOrderIDs slice is a frozen snapshot taken at creation; later edits to
// work orders never retroactively change an issued invoice.
type Invoice struct {
	id                  uint
	invoiceNumber       string
	ticketID            uint
	maintenanceVendorID uint
	organizationID      *uint
	workOrderIDs        []uint
	subtotal            float64
	tax                 float64
	discount            float64
	total               float64
	notes               string
	status              vo.InvoiceStatus
	paymentMethod       string
	paymentType         string
	checkNumber         string
	issuedAt            time.Time
	paidAt              *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

func NewInvoice(
	invoiceNumber string,
	ticketID uint,
	maintenanceVendorID uint,
	organizationID *uint,
	workOrders []*WorkOrder,
	tax float64,
	discount float64,
	notes string,
) (*Invoice, error) {
	if len(invoiceNumber) == 0 {
		return nil, fmt.Errorf("invoice number is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if maintenanceVendorID == 0 {
		return nil, fmt.Errorf("maintenance vendor ID is required")
	}
	if len(workOrders) == 0 {
		return nil, fmt.Errorf("invoice requires at least one work order")
	}
	if tax < 0 {
		return nil, fmt.Errorf("tax cannot be negative")
	}
	if discount < 0 {
		return nil, fmt.Errorf("discount cannot be negative")
	}

	subtotal := 0.0
	workOrderIDs := make([]uint, 0, len(workOrders))
	for _, wo := range workOrders {
		if wo.TicketID() != ticketID {
			return nil, fmt.Errorf("work order %d does not belong to ticket %d", wo.ID(), ticketID)
		}
		subtotal += wo.TotalCost()
		workOrderIDs = append(workOrderIDs, wo.ID())
	}
	subtotal = round2(subtotal)

	total := round2(subtotal + tax - discount)
	if total < 0 {
		return nil, fmt.Errorf("discount exceeds invoice amount")
	}

	now := time.Now()
	return &Invoice{
		invoiceNumber:       invoiceNumber,
		ticketID:            ticketID,
		maintenanceVendorID: maintenanceVendorID,
		organizationID:      organizationID,
		workOrderIDs:        workOrderIDs,
		subtotal:            subtotal,
		tax:                 round2(tax),
		discount:            round2(discount),
		total:               total,
		notes:               notes,
		status:              vo.InvoiceStatusSent,
		issuedAt:            now,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructInvoice(
	id uint,
	invoiceNumber string,
	ticketID uint,
	maintenanceVendorID uint,
	organizationID *uint,
	workOrderIDs []uint,
	subtotal, tax, discount, total float64,
	notes string,
	status vo.InvoiceStatus,
	paymentMethod, paymentType, checkNumber string,
	issuedAt time.Time,
	paidAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Invoice, error) {
	if id == 0 {
		return nil, fmt.Errorf("invoice ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid invoice status")
	}
	if workOrderIDs == nil {
		workOrderIDs = []uint{}
	}

	return &Invoice{
		id:                  id,
		invoiceNumber:       invoiceNumber,
		ticketID:            ticketID,
		maintenanceVendorID: maintenanceVendorID,
		organizationID:      organizationID,
		workOrderIDs:        workOrderIDs,
		subtotal:            subtotal,
		tax:                 tax,
		discount:            discount,
		total:               total,
		notes:               notes,
		status:              status,
		paymentMethod:       paymentMethod,
		paymentType:         paymentType,
		checkNumber:         checkNumber,
		issuedAt:            issuedAt,
		paidAt:              paidAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (i *Invoice) ID() uint                  { return i.id }
func (i *Invoice) InvoiceNumber() string     { return i.invoiceNumber }
func (i *Invoice) TicketID() uint            { return i.ticketID }
func (i *Invoice) MaintenanceVendorID() uint { return i.maintenanceVendorID }
func (i *Invoice) OrganizationID() *uint     { return i.organizationID }
func (i *Invoice) Subtotal() float64         { return i.subtotal }
func (i *Invoice) Tax() float64              { return i.tax }
func (i *Invoice) Discount() float64         { return i.discount }
func (i *Invoice) Total() float64            { return i.total }
func (i *Invoice) Notes() string             { return i.notes }
func (i *Invoice) Status() vo.InvoiceStatus  { return i.status }
func (i *Invoice) PaymentMethod() string     { return i.paymentMethod }
func (i *Invoice) PaymentType() string       { return i.paymentType }
func (i *Invoice) CheckNumber() string       { return i.checkNumber }
func (i *Invoice) IssuedAt() time.Time       { return i.issuedAt }
func (i *Invoice) PaidAt() *time.Time        { return i.paidAt }
func (i *Invoice) CreatedAt() time.Time      { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time      { return i.updatedAt }

func (i *Invoice) WorkOrderIDs() []uint {
	ids := make([]uint, len(i.workOrderIDs))
	copy(ids, i.workOrderIDs)
	return ids
}

func (i *Invoice) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("invoice ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("invoice ID cannot be zero")
	}
	i.id = id
	return nil
}

// MarkPaid records an external payment against the invoice.
func (i *Invoice) MarkPaid(paymentMethod, paymentType, checkNumber string) error {
	if !i.status.IsPayable() {
		return fmt.Errorf("invoice with status %s cannot be paid", i.status)
	}
	if len(paymentMethod) == 0 {
		return fmt.Errorf("payment method is required")
	}

	now := time.Now()
	i.paymentMethod = paymentMethod
	i.paymentType = paymentType
	i.checkNumber = checkNumber
	i.paidAt = &now
	i.status = vo.InvoiceStatusPaid
	i.updatedAt = now
	return nil
}

func (i *Invoice) MarkOverdue() error {
	if i.status != vo.InvoiceStatusSent {
		return fmt.Errorf("only sent invoices can become overdue")
	}
	i.status = vo.InvoiceStatusOverdue
	i.updatedAt = time.Now()
	return nil
}
