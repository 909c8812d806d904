package ticket

import (
	"context"

	vo "fixwise/internal/domain/ticket/valueobjects"
)

// TicketRepository persists tickets. Update applies an optimistic version
// precondition: a concurrent transition that already bumped the version makes
// Update fail with a conflict instead of silently overwriting.
type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
}

type TicketFilter struct {
	Status              *vo.TicketStatus
	Priority            *vo.Priority
	OrganizationID      *uint
	MaintenanceVendorID *uint
	ReporterID          *uint
	AssigneeID          *uint
	LocationIDs         []uint
	Page                int
	PageSize            int
	SortBy              string
	SortOrder           string
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}

// MilestoneRepository is append-only; milestones are never updated or deleted.
type MilestoneRepository interface {
	Save(ctx context.Context, milestone *Milestone) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Milestone, error)
}
