package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fixwise/internal/domain/access"
	"fixwise/internal/domain/billing"
	bvo "fixwise/internal/domain/billing/valueobjects"
	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	uvo "fixwise/internal/domain/user/valueobjects"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func uintPtr(v uint) *uint { return &v }

func reconstructTicket(t *testing.T, status tvo.TicketStatus, orgID, vendorID *uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(
		1,
		"MT-20260830-0001",
		"Water heater replacement",
		"Unit in building B failed inspection.",
		tvo.PriorityHigh,
		status,
		orgID,
		100,
		nil,
		vendorID,
		nil,
		nil,
		nil,
		"", "", "", "",
		0,
		nil, nil, nil, nil, nil,
		1,
		now.Add(-time.Hour), now.Add(-time.Hour),
	)
	require.NoError(t, err)
	return tk
}

func reconstructWorkOrder(t *testing.T, id, ticketID uint, number int, totalCost float64) *billing.WorkOrder {
	t.Helper()
	wo, err := billing.NewWorkOrder(
		ticketID, 3, number, "replaced heating element",
		[]billing.Part{{Name: "heating element", Quantity: 1, Cost: totalCost}},
		nil,
		"09:00", "11:30",
		bvo.CompletionCompleted,
	)
	require.NoError(t, err)
	require.NoError(t, wo.SetID(id))
	return wo
}

func reconstructInvoice(t *testing.T, id, ticketID, vendorID uint, orgID *uint, status bvo.InvoiceStatus) *billing.Invoice {
	t.Helper()
	now := time.Now()
	inv, err := billing.ReconstructInvoice(
		id, "INV-20260830-0001", ticketID, vendorID, orgID,
		[]uint{1},
		250, 20, 0, 270,
		"",
		status,
		"", "", "",
		now.Add(-time.Hour), nil,
		now.Add(-time.Hour), now.Add(-time.Hour),
	)
	require.NoError(t, err)
	return inv
}

func orgAdminActor(orgID uint) access.Actor {
	return access.Actor{UserID: 2, Role: uvo.RoleOrgAdmin, OrganizationID: uintPtr(orgID)}
}

func orgSubadminActor(orgID uint, perms ...uvo.Permission) access.Actor {
	set, _ := uvo.NewPermissionSet(perms)
	return access.Actor{UserID: 3, Role: uvo.RoleOrgSubadmin, OrganizationID: uintPtr(orgID), Permissions: set}
}

func maintenanceAdminActor(vendorID uint) access.Actor {
	return access.Actor{UserID: 4, Role: uvo.RoleMaintenanceAdmin, MaintenanceVendorID: uintPtr(vendorID)}
}

type mockTicketRepository struct {
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

type mockMilestoneRepository struct {
	saved []*ticket.Milestone
}

func (m *mockMilestoneRepository) Save(ctx context.Context, milestone *ticket.Milestone) error {
	m.saved = append(m.saved, milestone)
	return nil
}

func (m *mockMilestoneRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Milestone, error) {
	return m.saved, nil
}

type mockWorkOrderRepository struct {
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*billing.WorkOrder, error)
}

func (m *mockWorkOrderRepository) Save(ctx context.Context, wo *billing.WorkOrder) error { return nil }

func (m *mockWorkOrderRepository) GetByID(ctx context.Context, workOrderID uint) (*billing.WorkOrder, error) {
	return nil, errors.NewNotFoundError("work order not found")
}

func (m *mockWorkOrderRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*billing.WorkOrder, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) CountByTicketID(ctx context.Context, ticketID uint) (int, error) {
	workOrders, err := m.GetByTicketID(ctx, ticketID)
	if err != nil {
		return 0, err
	}
	return len(workOrders), nil
}

type mockInvoiceRepository struct {
	SaveFunc          func(ctx context.Context, inv *billing.Invoice) error
	UpdateFunc        func(ctx context.Context, inv *billing.Invoice) error
	GetByIDFunc       func(ctx context.Context, invoiceID uint) (*billing.Invoice, error)
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) (*billing.Invoice, error)
	ListFunc          func(ctx context.Context, filters billing.InvoiceFilter) ([]*billing.Invoice, int64, error)

	saved   []*billing.Invoice
	updated []*billing.Invoice
}

func (m *mockInvoiceRepository) Save(ctx context.Context, inv *billing.Invoice) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, inv)
	}
	if inv.ID() == 0 {
		_ = inv.SetID(uint(len(m.saved) + 1))
	}
	m.saved = append(m.saved, inv)
	return nil
}

func (m *mockInvoiceRepository) Update(ctx context.Context, inv *billing.Invoice) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inv)
	}
	m.updated = append(m.updated, inv)
	return nil
}

func (m *mockInvoiceRepository) GetByID(ctx context.Context, invoiceID uint) (*billing.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, invoiceID)
	}
	return nil, errors.NewNotFoundError("invoice not found")
}

func (m *mockInvoiceRepository) GetByTicketID(ctx context.Context, ticketID uint) (*billing.Invoice, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, errors.NewNotFoundError("invoice not found")
}

func (m *mockInvoiceRepository) List(ctx context.Context, filters billing.InvoiceFilter) ([]*billing.Invoice, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

type mockInvoiceNumberGenerator struct{}

func (m *mockInvoiceNumberGenerator) Generate(ctx context.Context) (string, error) {
	return "INV-20260830-0001", nil
}

type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockPublisher struct {
	published []events.DomainEvent
}

func (m *mockPublisher) Publish(event events.DomainEvent) {
	m.published = append(m.published, event)
}
