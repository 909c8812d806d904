package billing

import "context"

type WorkOrderRepository interface {
	Save(ctx context.Context, workOrder *WorkOrder) error
	GetByID(ctx context.Context, workOrderID uint) (*WorkOrder, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*WorkOrder, error)
	// CountByTicketID feeds the per-ticket sequential work order number.
	CountByTicketID(ctx context.Context, ticketID uint) (int, error)
}

type InvoiceRepository interface {
	Save(ctx context.Context, invoice *Invoice) error
	Update(ctx context.Context, invoice *Invoice) error
	GetByID(ctx context.Context, invoiceID uint) (*Invoice, error)
	// GetByTicketID returns the ticket's invoice; at most one non-void
	// invoice exists per ticket.
	GetByTicketID(ctx context.Context, ticketID uint) (*Invoice, error)
	List(ctx context.Context, filters InvoiceFilter) ([]*Invoice, int64, error)
}

type InvoiceFilter struct {
	MaintenanceVendorID *uint
	OrganizationID      *uint
	Status              *string
	Page                int
	PageSize            int
}
