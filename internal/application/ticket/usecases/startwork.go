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

type StartWorkCommand struct {
	Actor    access.Actor
	TicketID uint
}

type StartWorkResult struct {
	Ticket *dto.TicketDTO
}

type StartWorkUseCase struct {
	ticketRepo    ticket.TicketRepository
	milestoneRepo ticket.MilestoneRepository
	txManager     TransactionManager
	publisher     events.Publisher
	logger        logger.Interface
}

func NewStartWorkUseCase(
	ticketRepo ticket.TicketRepository,
	milestoneRepo ticket.MilestoneRepository,
	txManager TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
) *StartWorkUseCase {
	return &StartWorkUseCase{
		ticketRepo:    ticketRepo,
		milestoneRepo: milestoneRepo,
		txManager:     txManager,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *StartWorkUseCase) Execute(ctx context.Context, cmd StartWorkCommand) (*StartWorkResult, error) {
	uc.logger.Infow("executing start work use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

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
		if !caps.CanStart {
			return errors.NewForbiddenError("caller may not start work on this ticket")
		}

		oldStatus = t.Status()
		if err := t.StartWork(cmd.Actor.UserID); err != nil {
			return errors.NewValidationError(err.Error())
		}

		milestone, err := ticket.NewMilestone(t.ID(), ticket.MilestoneWorkStarted, cmd.Actor.UserID, "")
		if err != nil {
			return err
		}
		if err := uc.milestoneRepo.Save(txCtx, milestone); err != nil {
			return err
		}

		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to start work", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to start work")
	}

	uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus, cmd.Actor.UserID))

	uc.logger.Infow("work started", "ticket_id", t.ID())
	return &StartWorkResult{Ticket: dto.TicketToDTO(t)}, nil
}
