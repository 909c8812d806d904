package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixwise/internal/domain/billing"
	bvo "fixwise/internal/domain/billing/valueobjects"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/shared/errors"
)

func newCreateInvoiceUseCase(
	ticketRepo *mockTicketRepository,
	workOrderRepo *mockWorkOrderRepository,
	invoiceRepo *mockInvoiceRepository,
	milestoneRepo *mockMilestoneRepository,
	publisher *mockPublisher,
) *CreateInvoiceUseCase {
	return NewCreateInvoiceUseCase(
		ticketRepo, milestoneRepo, workOrderRepo, invoiceRepo,
		&mockInvoiceNumberGenerator{}, &mockTxManager{}, publisher, newTestLogger(),
	)
}

func TestCreateInvoiceUseCase_BillsAllWorkOrders(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusReadyForBilling, uintPtr(5), uintPtr(7))
	workOrders := []*billing.WorkOrder{
		reconstructWorkOrder(t, 1, 1, 1, 180),
		reconstructWorkOrder(t, 2, 1, 2, 75.50),
	}
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tk, nil },
	}
	workOrderRepo := &mockWorkOrderRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*billing.WorkOrder, error) {
			return workOrders, nil
		},
	}
	invoiceRepo := &mockInvoiceRepository{}
	milestoneRepo := &mockMilestoneRepository{}
	publisher := &mockPublisher{}
	uc := newCreateInvoiceUseCase(ticketRepo, workOrderRepo, invoiceRepo, milestoneRepo, publisher)

	result, err := uc.Execute(context.Background(), CreateInvoiceCommand{
		Actor:    maintenanceAdminActor(7),
		TicketID: 1,
		Tax:      25.56,
		Discount: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, "INV-20260830-0001", result.Invoice.InvoiceNumber)
	assert.Equal(t, 255.50, result.Invoice.Subtotal)
	assert.Equal(t, 271.06, result.Invoice.Total)
	assert.Equal(t, "sent", result.Invoice.Status)
	assert.Equal(t, []uint{1, 2}, result.Invoice.WorkOrderIDs)

	// The ticket closes out and the billing milestone is recorded atomically.
	assert.Equal(t, tvo.StatusBilled, tk.Status())
	require.Len(t, milestoneRepo.saved, 1)
	assert.Equal(t, ticket.MilestoneInvoiced, milestoneRepo.saved[0].Type())
	require.Len(t, publisher.published, 1)
}

func TestCreateInvoiceUseCase_NoEventOnFailedCommit(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusReadyForBilling, uintPtr(5), uintPtr(7))
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			return errors.NewInternalError("write failed")
		},
	}
	workOrderRepo := &mockWorkOrderRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*billing.WorkOrder, error) {
			return []*billing.WorkOrder{reconstructWorkOrder(t, 1, 1, 1, 180)}, nil
		},
	}
	publisher := &mockPublisher{}
	uc := newCreateInvoiceUseCase(ticketRepo, workOrderRepo, &mockInvoiceRepository{}, &mockMilestoneRepository{}, publisher)

	_, err := uc.Execute(context.Background(), CreateInvoiceCommand{
		Actor:    maintenanceAdminActor(7),
		TicketID: 1,
	})
	require.Error(t, err)
	assert.Empty(t, publisher.published, "a failed transaction must not emit notifications")
}

func TestCreateInvoiceUseCase_Guards(t *testing.T) {
	tests := []struct {
		name     string
		status   tvo.TicketStatus
		cmd      CreateInvoiceCommand
		existing *billing.Invoice
		noWork   bool
		wantErr  func(error) bool
	}{
		{
			name:    "organization admin cannot invoice",
			status:  tvo.StatusReadyForBilling,
			cmd:     CreateInvoiceCommand{Actor: orgAdminActor(5), TicketID: 1},
			wantErr: errors.IsForbiddenError,
		},
		{
			name:    "vendor of another ticket cannot invoice",
			status:  tvo.StatusReadyForBilling,
			cmd:     CreateInvoiceCommand{Actor: maintenanceAdminActor(99), TicketID: 1},
			wantErr: errors.IsForbiddenError,
		},
		{
			name:    "ticket not ready for billing",
			status:  tvo.StatusInProgress,
			cmd:     CreateInvoiceCommand{Actor: maintenanceAdminActor(7), TicketID: 1},
			wantErr: errors.IsValidationError,
		},
		{
			name:     "ticket already invoiced",
			status:   tvo.StatusReadyForBilling,
			cmd:      CreateInvoiceCommand{Actor: maintenanceAdminActor(7), TicketID: 1},
			existing: reconstructInvoice(t, 1, 1, 7, uintPtr(5), bvo.InvoiceStatusSent),
			wantErr:  errors.IsConflictError,
		},
		{
			name:    "no work orders to bill",
			status:  tvo.StatusReadyForBilling,
			cmd:     CreateInvoiceCommand{Actor: maintenanceAdminActor(7), TicketID: 1},
			noWork:  true,
			wantErr: errors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := reconstructTicket(t, tt.status, uintPtr(5), uintPtr(7))
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tk, nil },
			}
			workOrderRepo := &mockWorkOrderRepository{
				GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*billing.WorkOrder, error) {
					if tt.noWork {
						return nil, nil
					}
					return []*billing.WorkOrder{reconstructWorkOrder(t, 1, 1, 1, 180)}, nil
				},
			}
			invoiceRepo := &mockInvoiceRepository{}
			if tt.existing != nil {
				invoiceRepo.GetByTicketIDFunc = func(ctx context.Context, ticketID uint) (*billing.Invoice, error) {
					return tt.existing, nil
				}
			}
			uc := newCreateInvoiceUseCase(ticketRepo, workOrderRepo, invoiceRepo, &mockMilestoneRepository{}, &mockPublisher{})

			_, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, tt.wantErr(err))
			assert.Empty(t, invoiceRepo.saved)
			assert.Equal(t, tt.status, tk.Status())
		})
	}
}
