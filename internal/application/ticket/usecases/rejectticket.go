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

type RejectTicketCommand struct {
	Actor           access.Actor
	TicketID        uint
	RejectionReason string
}

type RejectTicketResult struct {
	Ticket *dto.TicketDTO
}

type RejectTicketUseCase struct {
	ticketRepo    ticket.TicketRepository
	milestoneRepo ticket.MilestoneRepository
	txManager     TransactionManager
	publisher     events.Publisher
	logger        logger.Interface
}

func NewRejectTicketUseCase(
	ticketRepo ticket.TicketRepository,
	milestoneRepo ticket.MilestoneRepository,
	txManager TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
) *RejectTicketUseCase {
	return &RejectTicketUseCase{
		ticketRepo:    ticketRepo,
		milestoneRepo: milestoneRepo,
		txManager:     txManager,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *RejectTicketUseCase) Execute(ctx context.Context, cmd RejectTicketCommand) (*RejectTicketResult, error) {
	uc.logger.Infow("executing reject ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid reject ticket command", "error", err)
		return nil, err
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
		if !caps.CanReject {
			return errors.NewForbiddenError("caller may not reject this ticket")
		}

		oldStatus = t.Status()
		if err := t.Reject(cmd.RejectionReason); err != nil {
			return errors.NewValidationError(err.Error())
		}

		milestone, err := ticket.NewMilestone(t.ID(), ticket.MilestoneRejected, cmd.Actor.UserID, cmd.RejectionReason)
		if err != nil {
			return err
		}
		if err := uc.milestoneRepo.Save(txCtx, milestone); err != nil {
			return err
		}

		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to reject ticket", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to reject ticket")
	}

	uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus, cmd.Actor.UserID))

	uc.logger.Infow("ticket rejected", "ticket_id", t.ID())
	return &RejectTicketResult{Ticket: dto.TicketToDTO(t)}, nil
}

func (uc *RejectTicketUseCase) validateCommand(cmd RejectTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.Actor.UserID == 0 {
		return errors.NewValidationError("actor is required")
	}
	if len(strings.TrimSpace(cmd.RejectionReason)) == 0 {
		return errors.NewValidationError("rejection reason is required")
	}
	return nil
}
