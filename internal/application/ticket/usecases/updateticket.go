package usecases

import (
	"context"
	"fmt"

	"fixwise/internal/application/ticket/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

// UpdateTicketCommand mutates descriptive fields only. Status is not
// reachable from here; lifecycle changes go through the transition use cases.
type UpdateTicketCommand struct {
	Actor       access.Actor
	TicketID    uint
	Title       *string
	Description *string
	Priority    *string
	Images      []string
}

type UpdateTicketResult struct {
	Ticket *dto.TicketDTO
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{ticketRepo: ticketRepo, txManager: txManager, logger: logger}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Actor.UserID == 0 {
		return nil, errors.NewValidationError("actor is required")
	}

	var t *ticket.Ticket
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		caps := access.ResolveCapabilities(cmd.Actor, t)
		// Editing is reserved to the reporter and accept-level authority.
		if !caps.CanView || (!caps.CanAccept && t.ReporterID() != cmd.Actor.UserID) {
			return errors.NewForbiddenError("caller may not edit this ticket")
		}
		if t.Status().IsTerminal() {
			return errors.NewValidationError("closed tickets cannot be edited")
		}

		title := t.Title()
		if cmd.Title != nil {
			title = *cmd.Title
		}
		description := t.Description()
		if cmd.Description != nil {
			description = *cmd.Description
		}
		priority := t.Priority()
		if cmd.Priority != nil {
			priority, err = tvo.NewPriority(*cmd.Priority)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if err := t.UpdateDetails(title, description, priority, cmd.Images); err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID())
	return &UpdateTicketResult{Ticket: dto.TicketToDTO(t)}, nil
}
