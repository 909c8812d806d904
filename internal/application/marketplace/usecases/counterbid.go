package usecases

import (
	"context"
	"fmt"

	"fixwise/internal/application/marketplace/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/marketplace"
	"fixwise/internal/domain/ticket"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type CounterBidCommand struct {
	Actor    access.Actor
	TicketID uint
	BidID    uint
	Offer    float64
	Notes    string
}

type CounterBidResult struct {
	Bid *dto.BidDTO
}

// CounterBidUseCase records an organization's counter-offer on a pending bid.
// The counter mutates the bid in place; only a vendor resubmission opens a
// new version in the chain.
type CounterBidUseCase struct {
	ticketRepo ticket.TicketRepository
	bidRepo    marketplace.BidRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewCounterBidUseCase(
	ticketRepo ticket.TicketRepository,
	bidRepo marketplace.BidRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *CounterBidUseCase {
	return &CounterBidUseCase{
		ticketRepo: ticketRepo,
		bidRepo:    bidRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CounterBidUseCase) Execute(ctx context.Context, cmd CounterBidCommand) (*CounterBidResult, error) {
	uc.logger.Infow("executing counter bid use case", "ticket_id", cmd.TicketID, "bid_id", cmd.BidID, "actor_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 || cmd.BidID == 0 {
		return nil, errors.NewValidationError("ticket ID and bid ID are required")
	}
	if cmd.Offer <= 0 {
		return nil, errors.NewValidationError("counter offer must be positive")
	}

	var bid *marketplace.Bid
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		caps := access.ResolveCapabilities(cmd.Actor, t)
		if !caps.CanAccept || cmd.Actor.Role.RequiresVendor() {
			return errors.NewForbiddenError("caller may not negotiate bids on this ticket")
		}
		if !t.Status().IsMarketplace() {
			return errors.NewValidationError("ticket is not listed on the marketplace")
		}

		bid, err = uc.bidRepo.GetByID(txCtx, cmd.BidID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("bid %d not found", cmd.BidID))
		}
		if bid.TicketID() != t.ID() {
			return errors.NewValidationError("bid does not belong to this ticket")
		}
		if err := bid.Counter(cmd.Offer, cmd.Notes); err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.bidRepo.Update(txCtx, bid)
	})
	if err != nil {
		uc.logger.Errorw("failed to counter bid", "bid_id", cmd.BidID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to counter bid")
	}

	uc.logger.Infow("bid countered", "bid_id", bid.ID(), "offer", cmd.Offer)
	return &CounterBidResult{Bid: dto.BidToDTO(bid)}, nil
}
