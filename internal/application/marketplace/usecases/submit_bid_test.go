package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixwise/internal/domain/marketplace"
	mvo "fixwise/internal/domain/marketplace/valueobjects"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/shared/errors"
)

func newSubmitBidUseCase(ticketRepo *mockTicketRepository, bidRepo *mockBidRepository, tierRepo *mockTierRepository) *SubmitBidUseCase {
	return NewSubmitBidUseCase(ticketRepo, bidRepo, tierRepo, &mockTxManager{}, newTestLogger())
}

func TestSubmitBidUseCase_FirstBid(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusMarketplace, uintPtr(5), nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tk, nil },
	}
	bidRepo := &mockBidRepository{}
	uc := newSubmitBidUseCase(ticketRepo, bidRepo, marketplaceTierRepo(t, 7, 5))

	result, err := uc.Execute(context.Background(), SubmitBidCommand{
		Actor:          maintenanceAdminActor(7),
		TicketID:       1,
		HourlyRate:     85,
		EstimatedHours: 4,
		Parts:          []marketplace.BidPart{{Name: "compressor relay", Quantity: 1, Cost: 120}},
		TotalAmount:    460,
		Notes:          "can start tomorrow",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Bid.Version)
	assert.Nil(t, result.Bid.PreviousBidID)
	assert.Equal(t, "pending", result.Bid.Status)
	require.Len(t, bidRepo.saved, 1)
	assert.Empty(t, bidRepo.updated)
}

func TestSubmitBidUseCase_ResubmissionVersionsTheChain(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusMarketplace, uintPtr(5), nil)
	previous := reconstructBid(t, 10, 1, 7, mvo.BidStatusCountered, 1)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tk, nil },
	}
	bidRepo := &mockBidRepository{
		GetActiveByTicketAndVendorFunc: func(ctx context.Context, ticketID, vendorID uint) (*marketplace.Bid, error) {
			return previous, nil
		},
	}
	uc := newSubmitBidUseCase(ticketRepo, bidRepo, marketplaceTierRepo(t, 7, 5))

	result, err := uc.Execute(context.Background(), SubmitBidCommand{
		Actor:          maintenanceAdminActor(7),
		TicketID:       1,
		HourlyRate:     75,
		EstimatedHours: 4,
		TotalAmount:    300,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Bid.Version)
	require.NotNil(t, result.Bid.PreviousBidID)
	assert.Equal(t, uint(10), *result.Bid.PreviousBidID)

	assert.True(t, previous.IsSuperseded())
	require.NotNil(t, previous.SupersededByBidID())
	assert.Equal(t, result.Bid.ID, *previous.SupersededByBidID())
	require.Len(t, bidRepo.updated, 1)
}

func TestSubmitBidUseCase_TierMustMatchTicketOrganization(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusMarketplace, uintPtr(5), nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tk, nil },
	}
	bidRepo := &mockBidRepository{}
	// Vendor 7 bids on organization 5's ticket while holding a marketplace
	// tier only with organization 6.
	uc := newSubmitBidUseCase(ticketRepo, bidRepo, marketplaceTierRepo(t, 7, 6))

	_, err := uc.Execute(context.Background(), SubmitBidCommand{
		Actor:          maintenanceAdminActor(7),
		TicketID:       1,
		HourlyRate:     85,
		EstimatedHours: 4,
		TotalAmount:    340,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Empty(t, bidRepo.saved)
}

func TestSubmitBidUseCase_ResidentialTicketUsesPlatformWideTier(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusMarketplace, nil, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tk, nil },
	}
	bidRepo := &mockBidRepository{}
	tierRepo := &mockTierRepository{
		HasActiveMarketplaceTierFunc: func(ctx context.Context, vendorID uint) (bool, error) {
			return vendorID == 7, nil
		},
	}
	uc := newSubmitBidUseCase(ticketRepo, bidRepo, tierRepo)

	result, err := uc.Execute(context.Background(), SubmitBidCommand{
		Actor:          maintenanceAdminActor(7),
		TicketID:       1,
		HourlyRate:     85,
		EstimatedHours: 4,
		TotalAmount:    340,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Bid.Version)
	require.Len(t, bidRepo.saved, 1)
}

func TestSubmitBidUseCase_Guards(t *testing.T) {
	marketplaceTicket := reconstructTicket(t, tvo.StatusMarketplace, uintPtr(5), nil)
	pendingTicket := reconstructTicket(t, tvo.StatusPending, uintPtr(5), nil)

	tests := []struct {
		name       string
		cmd        SubmitBidCommand
		tk         *ticket.Ticket
		eligible   bool
		wantErr    func(error) bool
	}{
		{
			name:     "organization admins cannot bid",
			cmd:      SubmitBidCommand{Actor: orgAdminActor(5), TicketID: 1, HourlyRate: 85, EstimatedHours: 4, TotalAmount: 340},
			tk:       marketplaceTicket,
			eligible: true,
			wantErr:  errors.IsForbiddenError,
		},
		{
			name:     "vendor without marketplace tier cannot bid",
			cmd:      SubmitBidCommand{Actor: maintenanceAdminActor(7), TicketID: 1, HourlyRate: 85, EstimatedHours: 4, TotalAmount: 340},
			tk:       marketplaceTicket,
			eligible: false,
			wantErr:  errors.IsForbiddenError,
		},
		{
			name:     "ticket not on the marketplace",
			cmd:      SubmitBidCommand{Actor: maintenanceAdminActor(7), TicketID: 1, HourlyRate: 85, EstimatedHours: 4, TotalAmount: 340},
			tk:       pendingTicket,
			eligible: true,
			wantErr:  errors.IsValidationError,
		},
		{
			name:     "invalid bid terms",
			cmd:      SubmitBidCommand{Actor: maintenanceAdminActor(7), TicketID: 1, HourlyRate: -1, EstimatedHours: 4, TotalAmount: 340},
			tk:       marketplaceTicket,
			eligible: true,
			wantErr:  errors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tt.tk, nil },
			}
			tierRepo := &mockTierRepository{}
			if tt.eligible {
				tierRepo = marketplaceTierRepo(t, 7, 5)
			}
			bidRepo := &mockBidRepository{}
			uc := newSubmitBidUseCase(ticketRepo, bidRepo, tierRepo)

			_, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, tt.wantErr(err))
			assert.Empty(t, bidRepo.saved)
		})
	}
}
