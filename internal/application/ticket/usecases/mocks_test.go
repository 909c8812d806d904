package usecases

import (
	"context"
	"io"
	"log/slog"

	"fixwise/internal/domain/billing"
	"fixwise/internal/domain/organization"
	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	"fixwise/internal/domain/user"
	"fixwise/internal/domain/vendorentity"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockTicketRepository struct {
	SaveFunc        func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc      func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc     func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc        func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	if t.ID() == 0 {
		_ = t.SetID(1)
	}
	return nil
}

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
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

type mockMilestoneRepository struct {
	SaveFunc          func(ctx context.Context, m *ticket.Milestone) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Milestone, error)

	saved []*ticket.Milestone
}

func (m *mockMilestoneRepository) Save(ctx context.Context, milestone *ticket.Milestone) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, milestone)
	}
	m.saved = append(m.saved, milestone)
	return nil
}

func (m *mockMilestoneRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Milestone, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return m.saved, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, c *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	if c.ID() == 0 {
		_ = c.SetID(1)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	GetByIDFunc    func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filters user.UserFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type mockTierRepository struct {
	GetActiveFunc                func(ctx context.Context, vendorID, organizationID uint) (*vendor.OrganizationTier, error)
	HasActiveMarketplaceTierFunc func(ctx context.Context, vendorID uint) (bool, error)
}

func (m *mockTierRepository) Save(ctx context.Context, t *vendor.OrganizationTier) error   { return nil }
func (m *mockTierRepository) Update(ctx context.Context, t *vendor.OrganizationTier) error { return nil }

func (m *mockTierRepository) GetActive(ctx context.Context, vendorID, organizationID uint) (*vendor.OrganizationTier, error) {
	if m.GetActiveFunc != nil {
		return m.GetActiveFunc(ctx, vendorID, organizationID)
	}
	return nil, nil
}

func (m *mockTierRepository) GetByVendorID(ctx context.Context, vendorID uint) ([]*vendor.OrganizationTier, error) {
	return nil, nil
}

func (m *mockTierRepository) HasActiveMarketplaceTier(ctx context.Context, vendorID uint) (bool, error) {
	if m.HasActiveMarketplaceTierFunc != nil {
		return m.HasActiveMarketplaceTierFunc(ctx, vendorID)
	}
	return false, nil
}

type mockLocationRepository struct {
	GetByIDFunc func(ctx context.Context, locationID uint) (*organization.Location, error)
}

func (m *mockLocationRepository) Save(ctx context.Context, l *organization.Location) error { return nil }

func (m *mockLocationRepository) GetByID(ctx context.Context, locationID uint) (*organization.Location, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, locationID)
	}
	return nil, errors.NewNotFoundError("location not found")
}

func (m *mockLocationRepository) GetByOrganizationID(ctx context.Context, orgID uint) ([]*organization.Location, error) {
	return nil, nil
}

type mockWorkOrderRepository struct {
	SaveFunc            func(ctx context.Context, wo *billing.WorkOrder) error
	GetByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*billing.WorkOrder, error)
	CountByTicketIDFunc func(ctx context.Context, ticketID uint) (int, error)

	saved []*billing.WorkOrder
}

func (m *mockWorkOrderRepository) Save(ctx context.Context, wo *billing.WorkOrder) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, wo)
	}
	if wo.ID() == 0 {
		_ = wo.SetID(uint(len(m.saved) + 1))
	}
	m.saved = append(m.saved, wo)
	return nil
}

func (m *mockWorkOrderRepository) GetByID(ctx context.Context, workOrderID uint) (*billing.WorkOrder, error) {
	return nil, nil
}

func (m *mockWorkOrderRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*billing.WorkOrder, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return m.saved, nil
}

func (m *mockWorkOrderRepository) CountByTicketID(ctx context.Context, ticketID uint) (int, error) {
	if m.CountByTicketIDFunc != nil {
		return m.CountByTicketIDFunc(ctx, ticketID)
	}
	return len(m.saved), nil
}

// mockTxManager runs the function inline; rollback behavior is exercised by
// returning errors from the repository mocks.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockPublisher struct {
	published []events.DomainEvent
}

func (m *mockPublisher) Publish(event events.DomainEvent) {
	m.published = append(m.published, event)
}

func (m *mockPublisher) eventTypes() []string {
	types := make([]string, 0, len(m.published))
	for _, e := range m.published {
		types = append(types, e.EventType())
	}
	return types
}

type mockMarkdownService struct{}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) { return markdown, nil }
func (m *mockMarkdownService) Sanitize(htmlContent string) string     { return htmlContent }
func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	return markdown, nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "MT-20260830-0001", nil
}
