package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "fixwise/internal/domain/ticket/valueobjects"
)

// ResidentialAddress is the address triple carried by tickets reported by
// residential users, who have no organization or location record.
type ResidentialAddress struct {
	Street string
	City   string
	Zip    string
}

func (a ResidentialAddress) IsComplete() bool {
	return a.Street != "" && a.City != "" && a.Zip != ""
}

// Ticket is the central aggregate. Its status field is only ever written by
// the transition methods below; each successful transition bumps the version
// counter used for the optimistic concurrency check at update time.
type Ticket struct {
	id                   uint
	ticketNumber         string
	title                string
	description          string
	priority             vo.Priority
	status               vo.TicketStatus
	organizationID       *uint
	reporterID           uint
	assigneeID           *uint
	maintenanceVendorID  *uint
	locationID           *uint
	residentialAddress   *ResidentialAddress
	images               []string
	rejectionReason      string
	forceCloseReason     string
	confirmationFeedback string
	rejectionFeedback    string
	reworkCycles         int
	assignedAt           *time.Time
	startedAt            *time.Time
	completedAt          *time.Time
	confirmedAt          *time.Time
	forceClosedAt        *time.Time
	version              int
	createdAt            time.Time
	updatedAt            time.Time
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	reporterID uint,
	organizationID *uint,
	locationID *uint,
	residential *ResidentialAddress,
	images []string,
) (*Ticket, error) {
	if len(strings.TrimSpace(title)) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(strings.TrimSpace(description)) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}

	// Exactly one of organization scope or residential address.
	if organizationID == nil && residential == nil {
		return nil, fmt.Errorf("either an organization or a residential address is required")
	}
	if organizationID != nil && residential != nil {
		return nil, fmt.Errorf("organization tickets cannot carry a residential address")
	}
	if residential != nil && !residential.IsComplete() {
		return nil, fmt.Errorf("residential address requires street, city and zip")
	}
	if locationID != nil && organizationID == nil {
		return nil, fmt.Errorf("location requires an organization")
	}

	if images == nil {
		images = []string{}
	}

	now := time.Now()
	return &Ticket{
		title:              title,
		description:        description,
		priority:           priority,
		status:             vo.StatusPending,
		organizationID:     organizationID,
		reporterID:         reporterID,
		locationID:         locationID,
		residentialAddress: residential,
		images:             images,
		version:            1,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructTicket(
	id uint,
	ticketNumber string,
	title string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	organizationID *uint,
	reporterID uint,
	assigneeID *uint,
	maintenanceVendorID *uint,
	locationID *uint,
	residential *ResidentialAddress,
	images []string,
	rejectionReason string,
	forceCloseReason string,
	confirmationFeedback string,
	rejectionFeedback string,
	reworkCycles int,
	assignedAt *time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	confirmedAt *time.Time,
	forceClosedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(ticketNumber) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if images == nil {
		images = []string{}
	}

	return &Ticket{
		id:                   id,
		ticketNumber:         ticketNumber,
		title:                title,
		description:          description,
		priority:             priority,
		status:               status,
		organizationID:       organizationID,
		reporterID:           reporterID,
		assigneeID:           assigneeID,
		maintenanceVendorID:  maintenanceVendorID,
		locationID:           locationID,
		residentialAddress:   residential,
		images:               images,
		rejectionReason:      rejectionReason,
		forceCloseReason:     forceCloseReason,
		confirmationFeedback: confirmationFeedback,
		rejectionFeedback:    rejectionFeedback,
		reworkCycles:         reworkCycles,
		assignedAt:           assignedAt,
		startedAt:            startedAt,
		completedAt:          completedAt,
		confirmedAt:          confirmedAt,
		forceClosedAt:        forceClosedAt,
		version:              version,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                                 { return t.id }
func (t *Ticket) TicketNumber() string                     { return t.ticketNumber }
func (t *Ticket) Title() string                            { return t.title }
func (t *Ticket) Description() string                      { return t.description }
func (t *Ticket) Priority() vo.Priority                    { return t.priority }
func (t *Ticket) Status() vo.TicketStatus                  { return t.status }
func (t *Ticket) OrganizationID() *uint                    { return t.organizationID }
func (t *Ticket) ReporterID() uint                         { return t.reporterID }
func (t *Ticket) AssigneeID() *uint                        { return t.assigneeID }
func (t *Ticket) MaintenanceVendorID() *uint               { return t.maintenanceVendorID }
func (t *Ticket) LocationID() *uint                        { return t.locationID }
func (t *Ticket) ResidentialAddress() *ResidentialAddress  { return t.residentialAddress }
func (t *Ticket) RejectionReason() string                  { return t.rejectionReason }
func (t *Ticket) ForceCloseReason() string                 { return t.forceCloseReason }
func (t *Ticket) ConfirmationFeedback() string             { return t.confirmationFeedback }
func (t *Ticket) RejectionFeedback() string                { return t.rejectionFeedback }
func (t *Ticket) ReworkCycles() int                        { return t.reworkCycles }
func (t *Ticket) AssignedAt() *time.Time                   { return t.assignedAt }
func (t *Ticket) StartedAt() *time.Time                    { return t.startedAt }
func (t *Ticket) CompletedAt() *time.Time                  { return t.completedAt }
func (t *Ticket) ConfirmedAt() *time.Time                  { return t.confirmedAt }
func (t *Ticket) ForceClosedAt() *time.Time                { return t.forceClosedAt }
func (t *Ticket) Version() int                             { return t.version }
func (t *Ticket) CreatedAt() time.Time                     { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time                     { return t.updatedAt }

func (t *Ticket) Images() []string {
	imagesCopy := make([]string, len(t.images))
	copy(imagesCopy, t.images)
	return imagesCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetTicketNumber(number string) error {
	if len(t.ticketNumber) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.ticketNumber = number
	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now()
	t.version++
}

// AssignVendor is organization-level acceptance: a pending (or marketplace)
// ticket is handed to a maintenance vendor.
func (t *Ticket) AssignVendor(vendorID uint) error {
	if vendorID == 0 {
		return fmt.Errorf("maintenance vendor ID cannot be zero")
	}
	if !t.status.CanTransitionTo(vo.StatusAccepted) {
		return fmt.Errorf("ticket is not awaiting vendor assignment (status %s)", t.status)
	}

	now := time.Now()
	t.maintenanceVendorID = &vendorID
	t.assignedAt = &now
	t.status = vo.StatusAccepted
	t.touch()
	return nil
}

// AssignTechnician is vendor-level acceptance: the vendor dispatches (or
// re-dispatches) a technician. The status does not change; a ticket that is
// accepted but not yet started is a valid intermediate state.
func (t *Ticket) AssignTechnician(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if t.maintenanceVendorID == nil {
		return fmt.Errorf("ticket has no maintenance vendor assigned")
	}
	if !t.status.IsAccepted() && !t.status.IsReturnNeeded() {
		return fmt.Errorf("technician can only be assigned while the ticket is accepted or awaiting a return visit (status %s)", t.status)
	}

	now := time.Now()
	t.assigneeID = &assigneeID
	t.assignedAt = &now
	t.touch()
	return nil
}

func (t *Ticket) Reject(reason string) error {
	if len(strings.TrimSpace(reason)) == 0 {
		return fmt.Errorf("rejection reason is required")
	}
	if !t.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("cannot reject ticket with status %s", t.status)
	}

	t.rejectionReason = reason
	t.status = vo.StatusRejected
	t.touch()
	return nil
}

// SendToMarketplace opts the ticket out of direct vendor assignment and
// lists it for open bidding. Any previous vendor/technician assignment is
// cleared.
func (t *Ticket) SendToMarketplace() error {
	if !t.status.CanTransitionTo(vo.StatusMarketplace) {
		return fmt.Errorf("cannot list ticket with status %s on the marketplace", t.status)
	}

	t.maintenanceVendorID = nil
	t.assigneeID = nil
	t.assignedAt = nil
	t.status = vo.StatusMarketplace
	t.touch()
	return nil
}

// StartWork moves an accepted ticket (or a return visit) into execution.
func (t *Ticket) StartWork(technicianID uint) error {
	if t.assigneeID == nil || *t.assigneeID != technicianID {
		return fmt.Errorf("only the assigned technician can start work")
	}
	if !t.status.IsAccepted() && !t.status.IsReturnNeeded() {
		return fmt.Errorf("work can only start on an accepted ticket (status %s)", t.status)
	}

	now := time.Now()
	t.startedAt = &now
	t.status = vo.StatusInProgress
	t.touch()
	return nil
}

// CompleteWork records the outcome of a work session. A fully completed job
// awaits reporter confirmation; a return_needed outcome leaves the ticket
// open for another visit.
func (t *Ticket) CompleteWork(technicianID uint, fullyCompleted bool) error {
	if t.assigneeID == nil || *t.assigneeID != technicianID {
		return fmt.Errorf("only the assigned technician can complete work")
	}
	if !t.status.IsInProgress() {
		return fmt.Errorf("ticket is not in progress (status %s)", t.status)
	}

	if fullyCompleted {
		now := time.Now()
		t.completedAt = &now
		t.status = vo.StatusPendingConfirmation
	} else {
		t.status = vo.StatusReturnNeeded
	}
	t.touch()
	return nil
}

// ConfirmCompletion is the reporter's verdict on completed work. A rejected
// confirmation reopens the ticket for rework; there is no cap on rework
// cycles, but the counter is kept for observability.
func (t *Ticket) ConfirmCompletion(confirmed bool, feedback string) error {
	if !t.status.IsPendingConfirmation() {
		return fmt.Errorf("ticket is not pending confirmation (status %s)", t.status)
	}

	if confirmed {
		now := time.Now()
		t.confirmedAt = &now
		t.confirmationFeedback = feedback
		t.status = vo.StatusReadyForBilling
	} else {
		t.rejectionFeedback = feedback
		t.reworkCycles++
		t.status = vo.StatusInProgress
	}
	t.touch()
	return nil
}

// ForceClose is the administrative override, allowed from any non-terminal
// state. It is irreversible.
func (t *Ticket) ForceClose(reason string) error {
	if len(strings.TrimSpace(reason)) == 0 {
		return fmt.Errorf("force close reason is required")
	}
	if t.status.IsTerminal() {
		return fmt.Errorf("cannot force close ticket with terminal status %s", t.status)
	}

	now := time.Now()
	t.forceCloseReason = reason
	t.forceClosedAt = &now
	t.status = vo.StatusForceClosed
	t.touch()
	return nil
}

// MarkBilled is invoked by invoice creation, the only path out of
// ready_for_billing.
func (t *Ticket) MarkBilled() error {
	if !t.status.IsReadyForBilling() {
		return fmt.Errorf("ticket is not ready for billing (status %s)", t.status)
	}

	t.status = vo.StatusBilled
	t.touch()
	return nil
}

// UpdateDetails mutates the non-lifecycle fields. Status is deliberately not
// reachable from here.
func (t *Ticket) UpdateDetails(title, description string, priority vo.Priority, images []string) error {
	if len(strings.TrimSpace(title)) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}

	t.title = title
	t.description = description
	t.priority = priority
	if images != nil {
		t.images = images
	}
	t.touch()
	return nil
}
