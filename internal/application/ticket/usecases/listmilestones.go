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

type ListMilestonesQuery struct {
	Actor    access.Actor
	TicketID uint
}

type ListMilestonesUseCase struct {
	ticketRepo    ticket.TicketRepository
	milestoneRepo ticket.MilestoneRepository
	logger        logger.Interface
}

func NewListMilestonesUseCase(
	ticketRepo ticket.TicketRepository,
	milestoneRepo ticket.MilestoneRepository,
	logger logger.Interface,
) *ListMilestonesUseCase {
	return &ListMilestonesUseCase{ticketRepo: ticketRepo, milestoneRepo: milestoneRepo, logger: logger}
}

func (uc *ListMilestonesUseCase) Execute(ctx context.Context, query ListMilestonesQuery) ([]*dto.MilestoneDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	caps := access.ResolveCapabilities(query.Actor, t)
	if !caps.CanView {
		return nil, errors.NewForbiddenError("caller may not view this ticket")
	}

	milestones, err := uc.milestoneRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list milestones", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list milestones")
	}

	dtos := make([]*dto.MilestoneDTO, 0, len(milestones))
	for _, m := range milestones {
		dtos = append(dtos, dto.MilestoneToDTO(m))
	}
	return dtos, nil
}
