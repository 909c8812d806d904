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

type ListCommentsQuery struct {
	Actor    access.Actor
	TicketID uint
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{ticketRepo: ticketRepo, commentRepo: commentRepo, logger: logger}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error) {
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

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list comments")
	}

	dtos := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, dto.CommentToDTO(c))
	}
	return dtos, nil
}
