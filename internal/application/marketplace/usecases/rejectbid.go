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

type RejectBidCommand struct {
	Actor    access.Actor
	TicketID uint
	BidID    uint
	Reason   string
}

type RejectBidResult struct {
	Bid *dto.BidDTO
}

type RejectBidUseCase struct {
	ticketRepo ticket.TicketRepository
	bidRepo    marketplace.BidRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewRejectBidUseCase(
	ticketRepo ticket.TicketRepository,
	bidRepo marketplace.BidRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *RejectBidUseCase {
	return &RejectBidUseCase{
		ticketRepo: ticketRepo,
		bidRepo:    bidRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *RejectBidUseCase) Execute(ctx context.Context, cmd RejectBidCommand) (*RejectBidResult, error) {
	uc.logger.Infow("executing reject bid use case", "ticket_id", cmd.TicketID, "bid_id", cmd.BidID, "actor_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 || cmd.BidID == 0 {
		return nil, errors.NewValidationError("ticket ID and bid ID are required")
	}

	var bid *marketplace.Bid
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		caps := access.ResolveCapabilities(cmd.Actor, t)
		if !caps.CanReject || cmd.Actor.Role.RequiresVendor() {
			return errors.NewForbiddenError("caller may not reject bids on this ticket")
		}

		bid, err = uc.bidRepo.GetByID(txCtx, cmd.BidID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("bid %d not found", cmd.BidID))
		}
		if bid.TicketID() != t.ID() {
			return errors.NewValidationError("bid does not belong to this ticket")
		}
		if err := bid.Reject(cmd.Reason); err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.bidRepo.Update(txCtx, bid)
	})
	if err != nil {
		uc.logger.Errorw("failed to reject bid", "bid_id", cmd.BidID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to reject bid")
	}

	uc.logger.Infow("bid rejected", "bid_id", bid.ID())
	return &RejectBidResult{Bid: dto.BidToDTO(bid)}, nil
}
