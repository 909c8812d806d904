package usecases

import (
	"context"
	"fmt"

	"fixwise/internal/application/marketplace/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/marketplace"
	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type AcceptBidCommand struct {
	Actor    access.Actor
	TicketID uint
	BidID    uint
}

type AcceptBidResult struct {
	Bid *dto.BidDTO
}

// AcceptBidUseCase settles a marketplace listing. In one transaction the
// winning bid is approved, every other active bid is rejected, and the
// ticket moves to accepted with the winning vendor assigned.
type AcceptBidUseCase struct {
	ticketRepo    ticket.TicketRepository
	milestoneRepo ticket.MilestoneRepository
	bidRepo       marketplace.BidRepository
	txManager     TransactionManager
	publisher     events.Publisher
	logger        logger.Interface
}

func NewAcceptBidUseCase(
	ticketRepo ticket.TicketRepository,
	milestoneRepo ticket.MilestoneRepository,
	bidRepo marketplace.BidRepository,
	txManager TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
) *AcceptBidUseCase {
	return &AcceptBidUseCase{
		ticketRepo:    ticketRepo,
		milestoneRepo: milestoneRepo,
		bidRepo:       bidRepo,
		txManager:     txManager,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *AcceptBidUseCase) Execute(ctx context.Context, cmd AcceptBidCommand) (*AcceptBidResult, error) {
	uc.logger.Infow("executing accept bid use case", "ticket_id", cmd.TicketID, "bid_id", cmd.BidID, "actor_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 || cmd.BidID == 0 {
		return nil, errors.NewValidationError("ticket ID and bid ID are required")
	}

	var (
		t         *ticket.Ticket
		winner    *marketplace.Bid
		oldStatus tvo.TicketStatus
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		caps := access.ResolveCapabilities(cmd.Actor, t)
		if !caps.CanAccept || cmd.Actor.Role.RequiresVendor() {
			return errors.NewForbiddenError("caller may not accept bids on this ticket")
		}
		if !t.Status().IsMarketplace() {
			return errors.NewValidationError("ticket is not listed on the marketplace")
		}

		winner, err = uc.bidRepo.GetByID(txCtx, cmd.BidID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("bid %d not found", cmd.BidID))
		}
		if winner.TicketID() != t.ID() {
			return errors.NewValidationError("bid does not belong to this ticket")
		}
		if err := winner.Accept(); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.bidRepo.Update(txCtx, winner); err != nil {
			return err
		}

		// Foreclose every other live bid so no vendor is left with an open
		// offer on a settled ticket.
		others, err := uc.bidRepo.GetActiveByTicketID(txCtx, t.ID())
		if err != nil {
			return err
		}
		for _, other := range others {
			if other.ID() == winner.ID() {
				continue
			}
			if err := other.Reject("another bid was accepted"); err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.bidRepo.Update(txCtx, other); err != nil {
				return err
			}
		}

		oldStatus = t.Status()
		if err := t.AssignVendor(winner.MaintenanceVendorID()); err != nil {
			return errors.NewValidationError(err.Error())
		}

		milestone, err := ticket.NewMilestone(t.ID(), ticket.MilestoneVendorAssigned, cmd.Actor.UserID,
			fmt.Sprintf("bid %d accepted", winner.ID()))
		if err != nil {
			return err
		}
		if err := uc.milestoneRepo.Save(txCtx, milestone); err != nil {
			return err
		}

		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to accept bid", "ticket_id", cmd.TicketID, "bid_id", cmd.BidID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to accept bid")
	}

	uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus, cmd.Actor.UserID))
	uc.publisher.Publish(ticket.NewVendorAssignedEvent(t, winner.MaintenanceVendorID()))

	uc.logger.Infow("bid accepted", "bid_id", winner.ID(), "ticket_id", t.ID(), "vendor_id", winner.MaintenanceVendorID())
	return &AcceptBidResult{Bid: dto.BidToDTO(winner)}, nil
}
