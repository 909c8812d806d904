package usecases

import "context"

// TransactionManager wraps bid settlement and versioning in one atomic unit.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SubmitBidExecutor interface {
	Execute(ctx context.Context, cmd SubmitBidCommand) (*SubmitBidResult, error)
}

type CounterBidExecutor interface {
	Execute(ctx context.Context, cmd CounterBidCommand) (*CounterBidResult, error)
}

type AcceptBidExecutor interface {
	Execute(ctx context.Context, cmd AcceptBidCommand) (*AcceptBidResult, error)
}

type RejectBidExecutor interface {
	Execute(ctx context.Context, cmd RejectBidCommand) (*RejectBidResult, error)
}

type ListBidsExecutor interface {
	Execute(ctx context.Context, cmd ListBidsCommand) (*ListBidsResult, error)
}
