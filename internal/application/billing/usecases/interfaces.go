package usecases

import (
	"context"

	"fixwise/internal/application/billing/dto"
)

// TransactionManager ties invoice issuance to the ticket's billed
// transition in one atomic unit.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateInvoiceExecutor interface {
	Execute(ctx context.Context, cmd CreateInvoiceCommand) (*CreateInvoiceResult, error)
}

type PayInvoiceExecutor interface {
	Execute(ctx context.Context, cmd PayInvoiceCommand) (*PayInvoiceResult, error)
}

type GetInvoiceExecutor interface {
	Execute(ctx context.Context, query GetInvoiceQuery) (*dto.InvoiceDTO, error)
}

type ListInvoicesExecutor interface {
	Execute(ctx context.Context, query ListInvoicesQuery) (*ListInvoicesResult, error)
}

type ListWorkOrdersExecutor interface {
	Execute(ctx context.Context, query ListWorkOrdersQuery) ([]*dto.WorkOrderDTO, error)
}
