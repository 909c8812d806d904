package usecases

import (
	"context"
	"fmt"

	"fixwise/internal/application/ticket/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type SendToMarketplaceCommand struct {
	Actor    access.Actor
	TicketID uint
}

type SendToMarketplaceResult struct {
	Ticket *dto.TicketDTO
}

// SendToMarketplaceUseCase lists a ticket for open bidding instead of direct
// vendor assignment.
type SendToMarketplaceUseCase struct {
	ticketRepo    ticket.TicketRepository
	milestoneRepo ticket.MilestoneRepository
	txManager     TransactionManager
	publisher     events.Publisher
	logger        logger.Interface
}

func NewSendToMarketplaceUseCase(
	ticketRepo ticket.TicketRepository,
	milestoneRepo ticket.MilestoneRepository,
	txManager TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
) *SendToMarketplaceUseCase {
	return &SendToMarketplaceUseCase{
		ticketRepo:    ticketRepo,
		milestoneRepo: milestoneRepo,
		txManager:     txManager,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *SendToMarketplaceUseCase) Execute(ctx context.Context, cmd SendToMarketplaceCommand) (*SendToMarketplaceResult, error) {
	uc.logger.Infow("executing send to marketplace use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Actor.UserID == 0 {
		return nil, errors.NewValidationError("actor is required")
	}

	var (
		t         *ticket.Ticket
		oldStatus tvo.TicketStatus
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		// Opting out of direct assignment is an organization-side decision.
		caps := access.ResolveCapabilities(cmd.Actor, t)
		if !caps.CanAccept || cmd.Actor.Role.RequiresVendor() {
			return errors.NewForbiddenError("caller may not list this ticket on the marketplace")
		}

		oldStatus = t.Status()
		if err := t.SendToMarketplace(); err != nil {
			return errors.NewValidationError(err.Error())
		}

		milestone, err := ticket.NewMilestone(t.ID(), ticket.MilestoneMarketplaceListed, cmd.Actor.UserID, "")
		if err != nil {
			return err
		}
		if err := uc.milestoneRepo.Save(txCtx, milestone); err != nil {
			return err
		}

		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to list ticket on marketplace", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to list ticket on marketplace")
	}

	uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus, cmd.Actor.UserID))

	uc.logger.Infow("ticket listed on marketplace", "ticket_id", t.ID())
	return &SendToMarketplaceResult{Ticket: dto.TicketToDTO(t)}, nil
}
