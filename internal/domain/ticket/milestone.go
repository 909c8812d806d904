package ticket

import (
	"fmt"
	"time"
)

// MilestoneType identifies a lifecycle step recorded in the audit trail.
type MilestoneType string

const (
	MilestoneCreated            MilestoneType = "created"
	MilestoneVendorAssigned     MilestoneType = "vendor_assigned"
	MilestoneTechnicianAssigned MilestoneType = "technician_assigned"
	MilestoneRejected           MilestoneType = "rejected"
	MilestoneMarketplaceListed  MilestoneType = "marketplace_listed"
	MilestoneWorkStarted        MilestoneType = "work_started"
	MilestoneWorkCompleted      MilestoneType = "work_completed"
	MilestoneReturnNeeded       MilestoneType = "return_needed"
	MilestoneConfirmed          MilestoneType = "confirmed"
	MilestoneReworkRequested    MilestoneType = "rework_requested"
	MilestoneForceClosed        MilestoneType = "force_closed"
	MilestoneInvoiced           MilestoneType = "invoiced"
)

var validMilestoneTypes = map[MilestoneType]bool{
	MilestoneCreated:            true,
	MilestoneVendorAssigned:     true,
	MilestoneTechnicianAssigned: true,
	MilestoneRejected:           true,
	MilestoneMarketplaceListed:  true,
	MilestoneWorkStarted:        true,
	MilestoneWorkCompleted:      true,
	MilestoneReturnNeeded:       true,
	MilestoneConfirmed:          true,
	MilestoneReworkRequested:    true,
	MilestoneForceClosed:        true,
	MilestoneInvoiced:           true,
}

func (m MilestoneType) String() string {
	return string(m)
}

func (m MilestoneType) IsValid() bool {
	return validMilestoneTypes[m]
}

// Milestone is one row of the append-only lifecycle audit trail. Milestones
// are never mutated or deleted.
type Milestone struct {
	id            uint
	ticketID      uint
	milestoneType MilestoneType
	actorID       uint
	note          string
	createdAt     time.Time
}

func NewMilestone(ticketID uint, milestoneType MilestoneType, actorID uint, note string) (*Milestone, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !milestoneType.IsValid() {
		return nil, fmt.Errorf("invalid milestone type: %s", milestoneType)
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}

	return &Milestone{
		ticketID:      ticketID,
		milestoneType: milestoneType,
		actorID:       actorID,
		note:          note,
		createdAt:     time.Now(),
	}, nil
}

func ReconstructMilestone(id, ticketID uint, milestoneType MilestoneType, actorID uint, note string, createdAt time.Time) (*Milestone, error) {
	if id == 0 {
		return nil, fmt.Errorf("milestone ID cannot be zero")
	}
	if !milestoneType.IsValid() {
		return nil, fmt.Errorf("invalid milestone type: %s", milestoneType)
	}

	return &Milestone{
		id:            id,
		ticketID:      ticketID,
		milestoneType: milestoneType,
		actorID:       actorID,
		note:          note,
		createdAt:     createdAt,
	}, nil
}

func (m *Milestone) ID() uint                     { return m.id }
func (m *Milestone) TicketID() uint               { return m.ticketID }
func (m *Milestone) Type() MilestoneType          { return m.milestoneType }
func (m *Milestone) ActorID() uint                { return m.actorID }
func (m *Milestone) Note() string                 { return m.note }
func (m *Milestone) CreatedAt() time.Time         { return m.createdAt }

func (m *Milestone) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("milestone ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("milestone ID cannot be zero")
	}
	m.id = id
	return nil
}
