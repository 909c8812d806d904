package usecases

import (
	"context"
	"fmt"
	"strings"

	"fixwise/internal/application/ticket/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type ForceCloseCommand struct {
	Actor    access.Actor
	TicketID uint
	Reason   string
}

type ForceCloseResult struct {
	Ticket *dto.TicketDTO
}

// ForceCloseUseCase is the administrative override out of any non-terminal
// state. Irreversible.
type ForceCloseUseCase struct {
	ticketRepo    ticket.TicketRepository
	milestoneRepo ticket.MilestoneRepository
	txManager     TransactionManager
	publisher     events.Publisher
	logger        logger.Interface
}

func NewForceCloseUseCase(
	ticketRepo ticket.TicketRepository,
	milestoneRepo ticket.MilestoneRepository,
	txManager TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
) *ForceCloseUseCase {
	return &ForceCloseUseCase{
		ticketRepo:    ticketRepo,
		milestoneRepo: milestoneRepo,
		txManager:     txManager,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *ForceCloseUseCase) Execute(ctx context.Context, cmd ForceCloseCommand) (*ForceCloseResult, error) {
	uc.logger.Infow("executing force close use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Actor.UserID == 0 {
		return nil, errors.NewValidationError("actor is required")
	}
	if len(strings.TrimSpace(cmd.Reason)) == 0 {
		return nil, errors.NewValidationError("force close reason is required")
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

		caps := access.ResolveCapabilities(cmd.Actor, t)
		if !caps.CanForceClose {
			return errors.NewForbiddenError("caller may not force close this ticket")
		}

		oldStatus = t.Status()
		if err := t.ForceClose(cmd.Reason); err != nil {
			return errors.NewValidationError(err.Error())
		}

		milestone, err := ticket.NewMilestone(t.ID(), ticket.MilestoneForceClosed, cmd.Actor.UserID, cmd.Reason)
		if err != nil {
			return err
		}
		if err := uc.milestoneRepo.Save(txCtx, milestone); err != nil {
			return err
		}

		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to force close ticket", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to force close ticket")
	}

	uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus, cmd.Actor.UserID))

	uc.logger.Infow("ticket force closed", "ticket_id", t.ID())
	return &ForceCloseResult{Ticket: dto.TicketToDTO(t)}, nil
}
