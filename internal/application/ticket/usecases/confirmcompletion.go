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

type ConfirmCompletionCommand struct {
	Actor     access.Actor
	TicketID  uint
	Confirmed bool
	Feedback  string
}

type ConfirmCompletionResult struct {
	Ticket *dto.TicketDTO
}

// ConfirmCompletionUseCase records the reporter's verdict. A rejection sends
// the ticket back to in-progress for rework; cycles are unbounded, counted
// for observability.
type ConfirmCompletionUseCase struct {
	ticketRepo    ticket.TicketRepository
	milestoneRepo ticket.MilestoneRepository
	txManager     TransactionManager
	publisher     events.Publisher
	logger        logger.Interface
}

func NewConfirmCompletionUseCase(
	ticketRepo ticket.TicketRepository,
	milestoneRepo ticket.MilestoneRepository,
	txManager TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
) *ConfirmCompletionUseCase {
	return &ConfirmCompletionUseCase{
		ticketRepo:    ticketRepo,
		milestoneRepo: milestoneRepo,
		txManager:     txManager,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *ConfirmCompletionUseCase) Execute(ctx context.Context, cmd ConfirmCompletionCommand) (*ConfirmCompletionResult, error) {
	uc.logger.Infow("executing confirm completion use case",
		"ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID, "confirmed", cmd.Confirmed)

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

		caps := access.ResolveCapabilities(cmd.Actor, t)
		if !caps.CanConfirm {
			return errors.NewForbiddenError("caller may not confirm completion of this ticket")
		}

		oldStatus = t.Status()
		if err := t.ConfirmCompletion(cmd.Confirmed, cmd.Feedback); err != nil {
			return errors.NewValidationError(err.Error())
		}

		milestoneType := ticket.MilestoneConfirmed
		if !cmd.Confirmed {
			milestoneType = ticket.MilestoneReworkRequested
		}
		milestone, err := ticket.NewMilestone(t.ID(), milestoneType, cmd.Actor.UserID, cmd.Feedback)
		if err != nil {
			return err
		}
		if err := uc.milestoneRepo.Save(txCtx, milestone); err != nil {
			return err
		}

		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to confirm completion", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to confirm completion")
	}

	uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus, cmd.Actor.UserID))

	uc.logger.Infow("completion verdict recorded",
		"ticket_id", t.ID(), "confirmed", cmd.Confirmed, "rework_cycles", t.ReworkCycles())
	return &ConfirmCompletionResult{Ticket: dto.TicketToDTO(t)}, nil
}
