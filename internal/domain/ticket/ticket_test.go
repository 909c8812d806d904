package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "fixwise/internal/domain/ticket/valueobjects"
)

func uintPtr(v uint) *uint { return &v }

func newPendingTicket(t *testing.T) *Ticket {
	t.Helper()
	ticket, err := NewTicket(
		"Leaking faucet",
		"The kitchen faucet drips constantly.",
		vo.PriorityMedium,
		10,
		uintPtr(1),
		uintPtr(5),
		nil,
		nil,
	)
	require.NoError(t, err)
	return ticket
}

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name           string
		title          string
		description    string
		priority       vo.Priority
		reporterID     uint
		organizationID *uint
		locationID     *uint
		residential    *ResidentialAddress
		wantErr        string
	}{
		{
			name:           "valid organization ticket",
			title:          "Broken AC",
			description:    "Unit 4B air conditioning is not cooling.",
			priority:       vo.PriorityHigh,
			reporterID:     1,
			organizationID: uintPtr(2),
			locationID:     uintPtr(3),
		},
		{
			name:        "valid residential ticket",
			title:       "Clogged drain",
			description: "Bathroom sink drains slowly.",
			priority:    vo.PriorityLow,
			reporterID:  7,
			residential: &ResidentialAddress{Street: "12 Oak St", City: "Springfield", Zip: "62704"},
		},
		{
			name:        "missing title",
			title:       "   ",
			description: "desc",
			priority:    vo.PriorityLow,
			reporterID:  1,
			residential: &ResidentialAddress{Street: "a", City: "b", Zip: "c"},
			wantErr:     "title is required",
		},
		{
			name:        "missing description",
			title:       "Broken AC",
			description: "",
			priority:    vo.PriorityLow,
			reporterID:  1,
			residential: &ResidentialAddress{Street: "a", City: "b", Zip: "c"},
			wantErr:     "description is required",
		},
		{
			name:        "invalid priority",
			title:       "Broken AC",
			description: "desc",
			priority:    vo.Priority("urgent"),
			reporterID:  1,
			residential: &ResidentialAddress{Street: "a", City: "b", Zip: "c"},
			wantErr:     "invalid priority",
		},
		{
			name:        "no scope at all",
			title:       "Broken AC",
			description: "desc",
			priority:    vo.PriorityLow,
			reporterID:  1,
			wantErr:     "either an organization or a residential address",
		},
		{
			name:           "both organization and residential",
			title:          "Broken AC",
			description:    "desc",
			priority:       vo.PriorityLow,
			reporterID:     1,
			organizationID: uintPtr(2),
			residential:    &ResidentialAddress{Street: "a", City: "b", Zip: "c"},
			wantErr:        "cannot carry a residential address",
		},
		{
			name:        "incomplete residential address",
			title:       "Broken AC",
			description: "desc",
			priority:    vo.PriorityLow,
			reporterID:  1,
			residential: &ResidentialAddress{Street: "12 Oak St", City: "", Zip: "62704"},
			wantErr:     "requires street, city and zip",
		},
		{
			name:        "location without organization",
			title:       "Broken AC",
			description: "desc",
			priority:    vo.PriorityLow,
			reporterID:  1,
			locationID:  uintPtr(4),
			residential: &ResidentialAddress{Street: "a", City: "b", Zip: "c"},
			wantErr:     "location requires an organization",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := NewTicket(tt.title, tt.description, tt.priority, tt.reporterID, tt.organizationID, tt.locationID, tt.residential, nil)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusPending, ticket.Status())
			assert.Equal(t, 1, ticket.Version())
			assert.NotNil(t, ticket.Images())
		})
	}
}

func TestTicket_AssignVendor(t *testing.T) {
	ticket := newPendingTicket(t)

	err := ticket.AssignVendor(42)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusAccepted, ticket.Status())
	require.NotNil(t, ticket.MaintenanceVendorID())
	assert.Equal(t, uint(42), *ticket.MaintenanceVendorID())
	assert.NotNil(t, ticket.AssignedAt())
	assert.Equal(t, 2, ticket.Version())
}

func TestTicket_AssignVendor_FromMarketplace(t *testing.T) {
	ticket := newPendingTicket(t)
	require.NoError(t, ticket.SendToMarketplace())

	err := ticket.AssignVendor(42)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusAccepted, ticket.Status())
}

func TestTicket_AssignVendor_InvalidState(t *testing.T) {
	ticket := newPendingTicket(t)
	require.NoError(t, ticket.Reject("out of scope"))

	err := ticket.AssignVendor(42)
	assert.Error(t, err)
}

func TestTicket_AssignTechnician(t *testing.T) {
	ticket := newPendingTicket(t)

	// No vendor yet.
	err := ticket.AssignTechnician(9)
	assert.Error(t, err)

	require.NoError(t, ticket.AssignVendor(42))
	versionBefore := ticket.Version()

	err = ticket.AssignTechnician(9)
	require.NoError(t, err)

	// Status unchanged; only the assignment moved.
	assert.Equal(t, vo.StatusAccepted, ticket.Status())
	require.NotNil(t, ticket.AssigneeID())
	assert.Equal(t, uint(9), *ticket.AssigneeID())
	assert.Equal(t, versionBefore+1, ticket.Version())
}

func TestTicket_Reject(t *testing.T) {
	ticket := newPendingTicket(t)

	err := ticket.Reject("  ")
	assert.Error(t, err, "rejection requires a reason")

	err = ticket.Reject("duplicate of another ticket")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusRejected, ticket.Status())
	assert.Equal(t, "duplicate of another ticket", ticket.RejectionReason())
	assert.True(t, ticket.Status().IsTerminal())
}

func TestTicket_SendToMarketplace_ClearsAssignment(t *testing.T) {
	ticket := newPendingTicket(t)
	require.NoError(t, ticket.AssignVendor(42))
	require.NoError(t, ticket.AssignTechnician(9))

	err := ticket.SendToMarketplace()
	require.NoError(t, err)

	assert.Equal(t, vo.StatusMarketplace, ticket.Status())
	assert.Nil(t, ticket.MaintenanceVendorID())
	assert.Nil(t, ticket.AssigneeID())
	assert.Nil(t, ticket.AssignedAt())
}

func TestTicket_StartWork(t *testing.T) {
	ticket := newPendingTicket(t)
	require.NoError(t, ticket.AssignVendor(42))
	require.NoError(t, ticket.AssignTechnician(9))

	err := ticket.StartWork(8)
	assert.Error(t, err, "only the assignee can start")

	err = ticket.StartWork(9)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, ticket.Status())
	assert.NotNil(t, ticket.StartedAt())
}

func TestTicket_CompleteWork_ReturnNeeded(t *testing.T) {
	ticket := newPendingTicket(t)
	require.NoError(t, ticket.AssignVendor(42))
	require.NoError(t, ticket.AssignTechnician(9))
	require.NoError(t, ticket.StartWork(9))

	err := ticket.CompleteWork(9, false)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusReturnNeeded, ticket.Status())
	assert.Nil(t, ticket.CompletedAt())

	// A second visit can be dispatched and started again.
	require.NoError(t, ticket.AssignTechnician(9))
	require.NoError(t, ticket.StartWork(9))
	require.NoError(t, ticket.CompleteWork(9, true))
	assert.Equal(t, vo.StatusPendingConfirmation, ticket.Status())
	assert.NotNil(t, ticket.CompletedAt())
}

func TestTicket_ConfirmCompletion(t *testing.T) {
	ticket := newPendingTicket(t)
	require.NoError(t, ticket.AssignVendor(42))
	require.NoError(t, ticket.AssignTechnician(9))
	require.NoError(t, ticket.StartWork(9))
	require.NoError(t, ticket.CompleteWork(9, true))

	// Reporter rejects the work once.
	err := ticket.ConfirmCompletion(false, "faucet still drips")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, ticket.Status())
	assert.Equal(t, 1, ticket.ReworkCycles())
	assert.Equal(t, "faucet still drips", ticket.RejectionFeedback())

	// Second attempt succeeds.
	require.NoError(t, ticket.CompleteWork(9, true))
	err = ticket.ConfirmCompletion(true, "all good now")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusReadyForBilling, ticket.Status())
	assert.Equal(t, 1, ticket.ReworkCycles())
	assert.Equal(t, "all good now", ticket.ConfirmationFeedback())
	assert.NotNil(t, ticket.ConfirmedAt())
}

func TestTicket_ForceClose(t *testing.T) {
	ticket := newPendingTicket(t)

	err := ticket.ForceClose("")
	assert.Error(t, err, "force close requires a reason")

	err = ticket.ForceClose("reported by mistake")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusForceClosed, ticket.Status())
	assert.NotNil(t, ticket.ForceClosedAt())

	// Terminal: cannot be closed twice.
	err = ticket.ForceClose("again")
	assert.Error(t, err)
}

func TestTicket_MarkBilled(t *testing.T) {
	ticket := newPendingTicket(t)

	err := ticket.MarkBilled()
	assert.Error(t, err)

	require.NoError(t, ticket.AssignVendor(42))
	require.NoError(t, ticket.AssignTechnician(9))
	require.NoError(t, ticket.StartWork(9))
	require.NoError(t, ticket.CompleteWork(9, true))
	require.NoError(t, ticket.ConfirmCompletion(true, ""))

	err = ticket.MarkBilled()
	require.NoError(t, err)
	assert.Equal(t, vo.StatusBilled, ticket.Status())
	assert.True(t, ticket.Status().IsTerminal())
}

func TestTicket_UpdateDetails(t *testing.T) {
	ticket := newPendingTicket(t)
	statusBefore := ticket.Status()

	err := ticket.UpdateDetails("New title", "New description", vo.PriorityHigh, []string{"img1.jpg"})
	require.NoError(t, err)

	assert.Equal(t, "New title", ticket.Title())
	assert.Equal(t, vo.PriorityHigh, ticket.Priority())
	assert.Equal(t, []string{"img1.jpg"}, ticket.Images())
	assert.Equal(t, statusBefore, ticket.Status())

	err = ticket.UpdateDetails("", "desc", vo.PriorityLow, nil)
	assert.Error(t, err)
}

func TestTicket_SetID(t *testing.T) {
	ticket := newPendingTicket(t)

	require.NoError(t, ticket.SetID(7))
	assert.Equal(t, uint(7), ticket.ID())

	assert.Error(t, ticket.SetID(8), "ID is immutable once set")
	assert.Error(t, ticket.SetID(0))
}

func TestTicket_VersionIncrementsOnEveryMutation(t *testing.T) {
	ticket := newPendingTicket(t)
	assert.Equal(t, 1, ticket.Version())

	require.NoError(t, ticket.AssignVendor(42))
	require.NoError(t, ticket.AssignTechnician(9))
	require.NoError(t, ticket.StartWork(9))
	require.NoError(t, ticket.CompleteWork(9, true))

	assert.Equal(t, 5, ticket.Version())
}
