package usecases

import (
	"context"
	"fmt"

	"fixwise/internal/application/ticket/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/ticket"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    access.Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	caps := access.ResolveCapabilities(query.Actor, t)
	if !caps.CanView {
		// Hide existence from unauthorized callers.
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	return dto.TicketToDTO(t), nil
}
