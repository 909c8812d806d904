package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fixwise/internal/domain/access"
	"fixwise/internal/domain/marketplace"
	mvo "fixwise/internal/domain/marketplace/valueobjects"
	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	uvo "fixwise/internal/domain/user/valueobjects"
	"fixwise/internal/domain/vendorentity"
	vvo "fixwise/internal/domain/vendorentity/valueobjects"
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
		"Broken HVAC unit",
		"Rooftop unit no longer cools suite 400.",
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

func reconstructBid(t *testing.T, id, ticketID, vendorID uint, status mvo.BidStatus, version int) *marketplace.Bid {
	t.Helper()
	now := time.Now()
	b, err := marketplace.ReconstructBid(
		id, ticketID, vendorID,
		85, 4,
		[]marketplace.BidPart{{Name: "compressor relay", Quantity: 1, Cost: 120}},
		460, "parts on hand",
		status, false, nil, "", "",
		version, nil, nil, false,
		now.Add(-time.Hour), now.Add(-time.Hour),
	)
	require.NoError(t, err)
	return b
}

func orgAdminActor(orgID uint) access.Actor {
	return access.Actor{UserID: 2, Role: uvo.RoleOrgAdmin, OrganizationID: uintPtr(orgID)}
}

func maintenanceAdminActor(vendorID uint) access.Actor {
	return access.Actor{UserID: 4, Role: uvo.RoleMaintenanceAdmin, MaintenanceVendorID: uintPtr(vendorID)}
}

func marketplaceTier(t *testing.T, vendorID, orgID uint) *vendor.OrganizationTier {
	t.Helper()
	tier, err := vendor.NewOrganizationTier(vendorID, orgID, vvo.TierMarketplace)
	require.NoError(t, err)
	return tier
}

// marketplaceTierRepo grants a marketplace tier only for the given
// vendor/organization pair.
func marketplaceTierRepo(t *testing.T, vendorID, orgID uint) *mockTierRepository {
	t.Helper()
	return &mockTierRepository{
		GetActiveFunc: func(ctx context.Context, v, o uint) (*vendor.OrganizationTier, error) {
			if v == vendorID && o == orgID {
				return marketplaceTier(t, vendorID, orgID), nil
			}
			return nil, errors.NewNotFoundError("tier not found")
		},
	}
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

type mockBidRepository struct {
	SaveFunc                       func(ctx context.Context, b *marketplace.Bid) error
	UpdateFunc                     func(ctx context.Context, b *marketplace.Bid) error
	GetByIDFunc                    func(ctx context.Context, bidID uint) (*marketplace.Bid, error)
	GetByTicketIDFunc              func(ctx context.Context, ticketID uint) ([]*marketplace.Bid, error)
	GetActiveByTicketAndVendorFunc func(ctx context.Context, ticketID, vendorID uint) (*marketplace.Bid, error)
	GetActiveByTicketIDFunc        func(ctx context.Context, ticketID uint) ([]*marketplace.Bid, error)

	saved   []*marketplace.Bid
	updated []*marketplace.Bid
}

func (m *mockBidRepository) Save(ctx context.Context, b *marketplace.Bid) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, b)
	}
	if b.ID() == 0 {
		_ = b.SetID(uint(len(m.saved) + 10))
	}
	m.saved = append(m.saved, b)
	return nil
}

func (m *mockBidRepository) Update(ctx context.Context, b *marketplace.Bid) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	m.updated = append(m.updated, b)
	return nil
}

func (m *mockBidRepository) GetByID(ctx context.Context, bidID uint) (*marketplace.Bid, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, bidID)
	}
	return nil, errors.NewNotFoundError("bid not found")
}

func (m *mockBidRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*marketplace.Bid, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockBidRepository) GetActiveByTicketAndVendor(ctx context.Context, ticketID, vendorID uint) (*marketplace.Bid, error) {
	if m.GetActiveByTicketAndVendorFunc != nil {
		return m.GetActiveByTicketAndVendorFunc(ctx, ticketID, vendorID)
	}
	return nil, errors.NewNotFoundError("bid not found")
}

func (m *mockBidRepository) GetActiveByTicketID(ctx context.Context, ticketID uint) ([]*marketplace.Bid, error) {
	if m.GetActiveByTicketIDFunc != nil {
		return m.GetActiveByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
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
	return nil, errors.NewNotFoundError("tier not found")
}

func (m *mockTierRepository) GetByVendorID(ctx context.Context, vendorID uint) ([]*vendor.OrganizationTier, error) {
	return nil, nil
}

func (m *mockTierRepository) HasActiveMarketplaceTier(ctx context.Context, vendorID uint) (bool, error) {
	if m.HasActiveMarketplaceTierFunc != nil {
		return m.HasActiveMarketplaceTierFunc(ctx, vendorID)
	}
	return true, nil
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

func (m *mockPublisher) eventTypes() []string {
	types := make([]string, 0, len(m.published))
	for _, e := range m.published {
		types = append(types, e.EventType())
	}
	return types
}
