package usecases

import (
	"context"
	"fmt"
	"strings"

	"fixwise/internal/application/ticket/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
	"fixwise/internal/shared/services/markdown"
)

type AddCommentCommand struct {
	Actor    access.Actor
	TicketID uint
	Content  string
	Images   []string
}

type AddCommentResult struct {
	Comment *dto.CommentDTO
}

// AddCommentUseCase posts a comment on a ticket. Comment visibility follows
// the ticket's own capability rule.
type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	markdown    markdown.MarkdownService
	publisher   events.Publisher
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	markdownService markdown.MarkdownService,
	publisher events.Publisher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		markdown:    markdownService,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Actor.UserID == 0 {
		return nil, errors.NewValidationError("actor is required")
	}
	if len(strings.TrimSpace(cmd.Content)) == 0 {
		return nil, errors.NewValidationError("comment content is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	caps := access.ResolveCapabilities(cmd.Actor, t)
	if !caps.CanView {
		return nil, errors.NewForbiddenError("caller may not comment on this ticket")
	}

	// User-authored markdown is stored sanitized.
	content := uc.markdown.Sanitize(cmd.Content)

	comment, err := ticket.NewComment(t.ID(), cmd.Actor.UserID, content, cmd.Images, false)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to save comment")
	}

	uc.publisher.Publish(ticket.NewCommentAddedEvent(comment))

	uc.logger.Infow("comment added", "ticket_id", t.ID(), "comment_id", comment.ID())
	return &AddCommentResult{Comment: dto.CommentToDTO(comment)}, nil
}
