package usecases

import (
	"context"

	"fixwise/internal/application/ticket/dto"
)

// TransactionManager wraps each lifecycle transition and its side effects in
// one atomic unit.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type AcceptTicketExecutor interface {
	Execute(ctx context.Context, cmd AcceptTicketCommand) (*AcceptTicketResult, error)
}

type RejectTicketExecutor interface {
	Execute(ctx context.Context, cmd RejectTicketCommand) (*RejectTicketResult, error)
}

type SendToMarketplaceExecutor interface {
	Execute(ctx context.Context, cmd SendToMarketplaceCommand) (*SendToMarketplaceResult, error)
}

type StartWorkExecutor interface {
	Execute(ctx context.Context, cmd StartWorkCommand) (*StartWorkResult, error)
}

type CompleteWorkExecutor interface {
	Execute(ctx context.Context, cmd CompleteWorkCommand) (*CompleteWorkResult, error)
}

type ConfirmCompletionExecutor interface {
	Execute(ctx context.Context, cmd ConfirmCompletionCommand) (*ConfirmCompletionResult, error)
}

type ForceCloseExecutor interface {
	Execute(ctx context.Context, cmd ForceCloseCommand) (*ForceCloseResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error)
}

type ListMilestonesExecutor interface {
	Execute(ctx context.Context, query ListMilestonesQuery) ([]*dto.MilestoneDTO, error)
}
