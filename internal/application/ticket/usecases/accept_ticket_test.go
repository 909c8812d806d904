package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixwise/internal/domain/access"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/domain/user"
	uvo "fixwise/internal/domain/user/valueobjects"
	"fixwise/internal/domain/vendorentity"
	vvo "fixwise/internal/domain/vendorentity/valueobjects"
	"fixwise/internal/shared/errors"
)

func activeTier(t *testing.T, vendorID, orgID uint, tier vvo.Tier) *vendor.OrganizationTier {
	t.Helper()
	rel, err := vendor.NewOrganizationTier(vendorID, orgID, tier)
	require.NoError(t, err)
	return rel
}

func technicianUser(t *testing.T, id, vendorID uint) *user.User {
	t.Helper()
	email, err := uvo.NewEmail("tech@example.com")
	require.NoError(t, err)
	u, err := user.NewUser(email, "Tech", uvo.RoleTechnician, "hash", nil, uintPtr(vendorID))
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func newAcceptUseCase(
	ticketRepo *mockTicketRepository,
	milestoneRepo *mockMilestoneRepository,
	userRepo *mockUserRepository,
	tierRepo *mockTierRepository,
	publisher *mockPublisher,
) *AcceptTicketUseCase {
	return NewAcceptTicketUseCase(ticketRepo, milestoneRepo, userRepo, tierRepo, &mockTxManager{}, publisher, newTestLogger())
}

func TestAcceptTicketUseCase_OrganizationAcceptance(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusPending, uintPtr(5), nil, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	milestoneRepo := &mockMilestoneRepository{}
	tierRepo := &mockTierRepository{
		GetActiveFunc: func(ctx context.Context, vendorID, orgID uint) (*vendor.OrganizationTier, error) {
			return activeTier(t, vendorID, orgID, vvo.Tier1), nil
		},
	}
	publisher := &mockPublisher{}
	uc := newAcceptUseCase(ticketRepo, milestoneRepo, &mockUserRepository{}, tierRepo, publisher)

	result, err := uc.Execute(context.Background(), AcceptTicketCommand{
		Actor:               orgAdminActor(5),
		TicketID:            1,
		MaintenanceVendorID: uintPtr(7),
	})
	require.NoError(t, err)

	assert.Equal(t, "accepted", result.Ticket.Status)
	require.NotNil(t, result.Ticket.MaintenanceVendorID)
	assert.Equal(t, uint(7), *result.Ticket.MaintenanceVendorID)
	require.Len(t, milestoneRepo.saved, 1)
	assert.Equal(t, ticket.MilestoneVendorAssigned, milestoneRepo.saved[0].Type())
	assert.Contains(t, publisher.eventTypes(), ticket.EventTypeStatusChanged)
	assert.Contains(t, publisher.eventTypes(), ticket.EventTypeVendorAssigned)
}

func TestAcceptTicketUseCase_MarketplaceTierCannotDirectAssign(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusPending, uintPtr(5), nil, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	tierRepo := &mockTierRepository{
		GetActiveFunc: func(ctx context.Context, vendorID, orgID uint) (*vendor.OrganizationTier, error) {
			return activeTier(t, vendorID, orgID, vvo.TierMarketplace), nil
		},
	}
	uc := newAcceptUseCase(ticketRepo, &mockMilestoneRepository{}, &mockUserRepository{}, tierRepo, &mockPublisher{})

	_, err := uc.Execute(context.Background(), AcceptTicketCommand{
		Actor:               orgAdminActor(5),
		TicketID:            1,
		MaintenanceVendorID: uintPtr(7),
	})
	assert.True(t, errors.IsForbiddenError(err))
	assert.Equal(t, tvo.StatusPending, tk.Status(), "ticket must be untouched")
}

func TestAcceptTicketUseCase_SubadminWithoutPermission(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusPending, uintPtr(5), nil, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := newAcceptUseCase(ticketRepo, &mockMilestoneRepository{}, &mockUserRepository{}, &mockTierRepository{}, &mockPublisher{})

	actor := access.Actor{
		UserID: 3, Role: uvo.RoleOrgSubadmin,
		OrganizationID: uintPtr(5),
		Permissions:    uvo.PermissionSet{uvo.PermissionPlaceTicket: true},
	}
	_, err := uc.Execute(context.Background(), AcceptTicketCommand{
		Actor:               actor,
		TicketID:            1,
		MaintenanceVendorID: uintPtr(7),
	})

	assert.True(t, errors.IsForbiddenError(err))
	assert.Equal(t, tvo.StatusPending, tk.Status(), "ticket status must be unchanged")
}

func TestAcceptTicketUseCase_VendorDispatchesTechnician(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusAccepted, uintPtr(5), uintPtr(7), nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return technicianUser(t, id, 7), nil
		},
	}
	milestoneRepo := &mockMilestoneRepository{}
	uc := newAcceptUseCase(ticketRepo, milestoneRepo, userRepo, &mockTierRepository{}, &mockPublisher{})

	result, err := uc.Execute(context.Background(), AcceptTicketCommand{
		Actor:      maintenanceAdminActor(7),
		TicketID:   1,
		AssigneeID: uintPtr(42),
	})
	require.NoError(t, err)

	// Dispatch does not change the lifecycle state.
	assert.Equal(t, "accepted", result.Ticket.Status)
	require.NotNil(t, result.Ticket.AssigneeID)
	assert.Equal(t, uint(42), *result.Ticket.AssigneeID)
	require.Len(t, milestoneRepo.saved, 1)
	assert.Equal(t, ticket.MilestoneTechnicianAssigned, milestoneRepo.saved[0].Type())
}

func TestAcceptTicketUseCase_TechnicianFromOtherVendor(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusAccepted, uintPtr(5), uintPtr(7), nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return technicianUser(t, id, 8), nil
		},
	}
	uc := newAcceptUseCase(ticketRepo, &mockMilestoneRepository{}, userRepo, &mockTierRepository{}, &mockPublisher{})

	_, err := uc.Execute(context.Background(), AcceptTicketCommand{
		Actor:      maintenanceAdminActor(7),
		TicketID:   1,
		AssigneeID: uintPtr(42),
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestAcceptTicketUseCase_MarketplaceTicketNeedsBid(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusMarketplace, uintPtr(5), nil, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := newAcceptUseCase(ticketRepo, &mockMilestoneRepository{}, &mockUserRepository{}, &mockTierRepository{}, &mockPublisher{})

	_, err := uc.Execute(context.Background(), AcceptTicketCommand{
		Actor:               orgAdminActor(5),
		TicketID:            1,
		MaintenanceVendorID: uintPtr(7),
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestAcceptTicketUseCase_ConcurrentUpdateConflict(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusPending, uintPtr(5), nil, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			return errors.NewConflictError("ticket was modified concurrently")
		},
	}
	tierRepo := &mockTierRepository{
		GetActiveFunc: func(ctx context.Context, vendorID, orgID uint) (*vendor.OrganizationTier, error) {
			return activeTier(t, vendorID, orgID, vvo.Tier2), nil
		},
	}
	publisher := &mockPublisher{}
	uc := newAcceptUseCase(ticketRepo, &mockMilestoneRepository{}, &mockUserRepository{}, tierRepo, publisher)

	_, err := uc.Execute(context.Background(), AcceptTicketCommand{
		Actor:               orgAdminActor(5),
		TicketID:            1,
		MaintenanceVendorID: uintPtr(7),
	})
	assert.True(t, errors.IsConflictError(err), "optimistic check failure must surface as conflict")
	assert.Empty(t, publisher.published, "a failed transaction must not emit notifications")
}

func TestAcceptTicketUseCase_BothTargetsRejected(t *testing.T) {
	uc := newAcceptUseCase(&mockTicketRepository{}, &mockMilestoneRepository{}, &mockUserRepository{}, &mockTierRepository{}, &mockPublisher{})

	_, err := uc.Execute(context.Background(), AcceptTicketCommand{
		Actor:               orgAdminActor(5),
		TicketID:            1,
		MaintenanceVendorID: uintPtr(7),
		AssigneeID:          uintPtr(42),
	})
	assert.True(t, errors.IsValidationError(err))
}
