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

func TestCounterBidUseCase(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusMarketplace, uintPtr(5), nil)
	bid := reconstructBid(t, 10, 1, 7, mvo.BidStatusPending, 1)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tk, nil },
	}
	bidRepo := &mockBidRepository{
		GetByIDFunc: func(ctx context.Context, bidID uint) (*marketplace.Bid, error) { return bid, nil },
	}
	uc := NewCounterBidUseCase(ticketRepo, bidRepo, &mockTxManager{}, newTestLogger())

	result, err := uc.Execute(context.Background(), CounterBidCommand{
		Actor:    orgAdminActor(5),
		TicketID: 1,
		BidID:    10,
		Offer:    380,
		Notes:    "can you drop the parts markup?",
	})

	require.NoError(t, err)
	assert.Equal(t, "countered", result.Bid.Status)
	require.NotNil(t, result.Bid.CounterOffer)
	assert.Equal(t, 380.0, *result.Bid.CounterOffer)
	// Counters negotiate in place; the chain version only moves on vendor
	// resubmission.
	assert.Equal(t, 1, result.Bid.Version)
	require.Len(t, bidRepo.updated, 1)
}

func TestCounterBidUseCase_VendorMayNotCounter(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusMarketplace, uintPtr(5), nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := NewCounterBidUseCase(ticketRepo, &mockBidRepository{}, &mockTxManager{}, newTestLogger())

	_, err := uc.Execute(context.Background(), CounterBidCommand{
		Actor:    maintenanceAdminActor(7),
		TicketID: 1,
		BidID:    10,
		Offer:    380,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestRejectBidUseCase(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusMarketplace, uintPtr(5), nil)
	bid := reconstructBid(t, 10, 1, 7, mvo.BidStatusCountered, 1)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tk, nil },
	}
	bidRepo := &mockBidRepository{
		GetByIDFunc: func(ctx context.Context, bidID uint) (*marketplace.Bid, error) { return bid, nil },
	}
	uc := NewRejectBidUseCase(ticketRepo, bidRepo, &mockTxManager{}, newTestLogger())

	result, err := uc.Execute(context.Background(), RejectBidCommand{
		Actor:    orgAdminActor(5),
		TicketID: 1,
		BidID:    10,
		Reason:   "quote far above budget",
	})

	require.NoError(t, err)
	assert.Equal(t, "rejected", result.Bid.Status)
	assert.Equal(t, "quote far above budget", result.Bid.RejectionReason)
	require.Len(t, bidRepo.updated, 1)
}

func TestRejectBidUseCase_AlreadySettled(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusMarketplace, uintPtr(5), nil)
	bid := reconstructBid(t, 10, 1, 7, mvo.BidStatusAccepted, 1)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tk, nil },
	}
	bidRepo := &mockBidRepository{
		GetByIDFunc: func(ctx context.Context, bidID uint) (*marketplace.Bid, error) { return bid, nil },
	}
	uc := NewRejectBidUseCase(ticketRepo, bidRepo, &mockTxManager{}, newTestLogger())

	_, err := uc.Execute(context.Background(), RejectBidCommand{
		Actor:    orgAdminActor(5),
		TicketID: 1,
		BidID:    10,
		Reason:   "too late",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListBidsUseCase_Scoping(t *testing.T) {
	tk := reconstructTicket(t, tvo.StatusMarketplace, uintPtr(5), nil)
	all := []*marketplace.Bid{
		reconstructBid(t, 10, 1, 7, mvo.BidStatusPending, 1),
		reconstructBid(t, 11, 1, 8, mvo.BidStatusPending, 1),
	}
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) { return tk, nil },
	}
	bidRepo := &mockBidRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*marketplace.Bid, error) { return all, nil },
	}
	uc := NewListBidsUseCase(ticketRepo, bidRepo, newTestLogger())

	t.Run("organization sees every vendor's bids", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ListBidsCommand{Actor: orgAdminActor(5), TicketID: 1})
		require.NoError(t, err)
		assert.Len(t, result.Bids, 2)
	})

	t.Run("vendor sees only its own chain", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), ListBidsCommand{Actor: maintenanceAdminActor(8), TicketID: 1})
		require.NoError(t, err)
		require.Len(t, result.Bids, 1)
		assert.Equal(t, uint(8), result.Bids[0].MaintenanceVendorID)
	})

	t.Run("unrelated organization is denied", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListBidsCommand{Actor: orgAdminActor(99), TicketID: 1})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}
