package ticket

import (
	"time"

	vo "fixwise/internal/domain/ticket/valueobjects"
)

// TicketCreatedEvent is raised when a new ticket enters the system.
type TicketCreatedEvent struct {
	TicketID       uint
	TicketNumber   string
	ReporterID     uint
	OrganizationID *uint
	Priority       vo.Priority
	OccurredAt     time.Time
}

func NewTicketCreatedEvent(t *Ticket) *TicketCreatedEvent {
	return &TicketCreatedEvent{
		TicketID:       t.ID(),
		TicketNumber:   t.TicketNumber(),
		ReporterID:     t.ReporterID(),
		OrganizationID: t.OrganizationID(),
		Priority:       t.Priority(),
		OccurredAt:     time.Now(),
	}
}

// TicketStatusChangedEvent is raised on every lifecycle transition.
type TicketStatusChangedEvent struct {
	TicketID     uint
	TicketNumber string
	FromStatus   vo.TicketStatus
	ToStatus     vo.TicketStatus
	ActorUserID  uint
	OccurredAt   time.Time
}

func NewTicketStatusChangedEvent(t *Ticket, from vo.TicketStatus, actorUserID uint) *TicketStatusChangedEvent {
	return &TicketStatusChangedEvent{
		TicketID:     t.ID(),
		TicketNumber: t.TicketNumber(),
		FromStatus:   from,
		ToStatus:     t.Status(),
		ActorUserID:  actorUserID,
		OccurredAt:   time.Now(),
	}
}

// VendorAssignedEvent is raised when a maintenance vendor takes ownership,
// either directly or via an accepted marketplace bid.
type VendorAssignedEvent struct {
	TicketID            uint
	TicketNumber        string
	MaintenanceVendorID uint
	OccurredAt          time.Time
}

func NewVendorAssignedEvent(t *Ticket, vendorID uint) *VendorAssignedEvent {
	return &VendorAssignedEvent{
		TicketID:            t.ID(),
		TicketNumber:        t.TicketNumber(),
		MaintenanceVendorID: vendorID,
		OccurredAt:          time.Now(),
	}
}

// TechnicianAssignedEvent is raised when a technician is scheduled on a ticket.
type TechnicianAssignedEvent struct {
	TicketID     uint
	TicketNumber string
	TechnicianID uint
	OccurredAt   time.Time
}

func NewTechnicianAssignedEvent(t *Ticket, technicianID uint) *TechnicianAssignedEvent {
	return &TechnicianAssignedEvent{
		TicketID:     t.ID(),
		TicketNumber: t.TicketNumber(),
		TechnicianID: technicianID,
		OccurredAt:   time.Now(),
	}
}

// WorkCompletedEvent is raised when a technician submits completed work and
// the ticket moves to pending confirmation.
type WorkCompletedEvent struct {
	TicketID       uint
	TicketNumber   string
	TechnicianID   uint
	FullyCompleted bool
	OccurredAt     time.Time
}

func NewWorkCompletedEvent(t *Ticket, technicianID uint, fullyCompleted bool) *WorkCompletedEvent {
	return &WorkCompletedEvent{
		TicketID:       t.ID(),
		TicketNumber:   t.TicketNumber(),
		TechnicianID:   technicianID,
		FullyCompleted: fullyCompleted,
		OccurredAt:     time.Now(),
	}
}

// CommentAddedEvent is raised when a user or the system posts a comment.
type CommentAddedEvent struct {
	TicketID   uint
	CommentID  uint
	UserID     uint
	IsSystem   bool
	OccurredAt time.Time
}

func NewCommentAddedEvent(c *Comment) *CommentAddedEvent {
	return &CommentAddedEvent{
		TicketID:   c.TicketID(),
		CommentID:  c.ID(),
		UserID:     c.UserID(),
		IsSystem:   c.IsSystem(),
		OccurredAt: time.Now(),
	}
}

// Event type names used for dispatcher subscriptions.
const (
	EventTypeTicketCreated      = "ticket.created"
	EventTypeStatusChanged      = "ticket.status_changed"
	EventTypeVendorAssigned     = "ticket.vendor_assigned"
	EventTypeTechnicianAssigned = "ticket.technician_assigned"
	EventTypeWorkCompleted      = "ticket.work_completed"
	EventTypeCommentAdded       = "ticket.comment_added"
)

func (e *TicketCreatedEvent) EventType() string      { return EventTypeTicketCreated }
func (e *TicketStatusChangedEvent) EventType() string { return EventTypeStatusChanged }
func (e *VendorAssignedEvent) EventType() string     { return EventTypeVendorAssigned }
func (e *TechnicianAssignedEvent) EventType() string { return EventTypeTechnicianAssigned }
func (e *WorkCompletedEvent) EventType() string      { return EventTypeWorkCompleted }
func (e *CommentAddedEvent) EventType() string       { return EventTypeCommentAdded }

func (e *TicketCreatedEvent) OccurredAtTime() time.Time      { return e.OccurredAt }
func (e *TicketStatusChangedEvent) OccurredAtTime() time.Time { return e.OccurredAt }
func (e *VendorAssignedEvent) OccurredAtTime() time.Time     { return e.OccurredAt }
func (e *TechnicianAssignedEvent) OccurredAtTime() time.Time { return e.OccurredAt }
func (e *WorkCompletedEvent) OccurredAtTime() time.Time      { return e.OccurredAt }
func (e *CommentAddedEvent) OccurredAtTime() time.Time       { return e.OccurredAt }
