package dto

import (
	"time"

	"fixwise/internal/domain/ticket"
)

// TicketDTO is the transport representation of a ticket.
type TicketDTO struct {
	ID                   uint     `json:"id"`
	TicketNumber         string   `json:"ticket_number"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Priority             string   `json:"priority"`
	Status               string   `json:"status"`
	OrganizationID       *uint    `json:"organization_id,omitempty"`
	ReporterID           uint     `json:"reporter_id"`
	AssigneeID           *uint    `json:"assignee_id,omitempty"`
	MaintenanceVendorID  *uint    `json:"maintenance_vendor_id,omitempty"`
	LocationID           *uint    `json:"location_id,omitempty"`
	ResidentialStreet    string   `json:"residential_street,omitempty"`
	ResidentialCity      string   `json:"residential_city,omitempty"`
	ResidentialZip       string   `json:"residential_zip,omitempty"`
	Images               []string `json:"images"`
	RejectionReason      string   `json:"rejection_reason,omitempty"`
	ForceCloseReason     string   `json:"force_close_reason,omitempty"`
	ConfirmationFeedback string   `json:"confirmation_feedback,omitempty"`
	RejectionFeedback    string   `json:"rejection_feedback,omitempty"`
	ReworkCycles         int      `json:"rework_cycles"`
	AssignedAt           *string  `json:"assigned_at,omitempty"`
	StartedAt            *string  `json:"started_at,omitempty"`
	CompletedAt          *string  `json:"completed_at,omitempty"`
	ConfirmedAt          *string  `json:"confirmed_at,omitempty"`
	ForceClosedAt        *string  `json:"force_closed_at,omitempty"`
	CreatedAt            string   `json:"created_at"`
	UpdatedAt            string   `json:"updated_at"`
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func TicketToDTO(t *ticket.Ticket) *TicketDTO {
	d := &TicketDTO{
		ID:                   t.ID(),
		TicketNumber:         t.TicketNumber(),
		Title:                t.Title(),
		Description:          t.Description(),
		Priority:             t.Priority().String(),
		Status:               t.Status().String(),
		OrganizationID:       t.OrganizationID(),
		ReporterID:           t.ReporterID(),
		AssigneeID:           t.AssigneeID(),
		MaintenanceVendorID:  t.MaintenanceVendorID(),
		LocationID:           t.LocationID(),
		Images:               t.Images(),
		RejectionReason:      t.RejectionReason(),
		ForceCloseReason:     t.ForceCloseReason(),
		ConfirmationFeedback: t.ConfirmationFeedback(),
		RejectionFeedback:    t.RejectionFeedback(),
		ReworkCycles:         t.ReworkCycles(),
		AssignedAt:           formatTimePtr(t.AssignedAt()),
		StartedAt:            formatTimePtr(t.StartedAt()),
		CompletedAt:          formatTimePtr(t.CompletedAt()),
		ConfirmedAt:          formatTimePtr(t.ConfirmedAt()),
		ForceClosedAt:        formatTimePtr(t.ForceClosedAt()),
		CreatedAt:            formatTime(t.CreatedAt()),
		UpdatedAt:            formatTime(t.UpdatedAt()),
	}
	if addr := t.ResidentialAddress(); addr != nil {
		d.ResidentialStreet = addr.Street
		d.ResidentialCity = addr.City
		d.ResidentialZip = addr.Zip
	}
	return d
}

type CommentDTO struct {
	ID        uint     `json:"id"`
	TicketID  uint     `json:"ticket_id"`
	UserID    uint     `json:"user_id"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
	IsSystem  bool     `json:"is_system"`
	CreatedAt string   `json:"created_at"`
}

func CommentToDTO(c *ticket.Comment) *CommentDTO {
	return &CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		Images:    c.Images(),
		IsSystem:  c.IsSystem(),
		CreatedAt: formatTime(c.CreatedAt()),
	}
}

type MilestoneDTO struct {
	ID        uint   `json:"id"`
	TicketID  uint   `json:"ticket_id"`
	Type      string `json:"type"`
	ActorID   uint   `json:"actor_id"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
}

func MilestoneToDTO(m *ticket.Milestone) *MilestoneDTO {
	return &MilestoneDTO{
		ID:        m.ID(),
		TicketID:  m.TicketID(),
		Type:      m.Type().String(),
		ActorID:   m.ActorID(),
		Note:      m.Note(),
		CreatedAt: formatTime(m.CreatedAt()),
	}
}
