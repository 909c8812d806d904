package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fixwise/internal/domain/access"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	uvo "fixwise/internal/domain/user/valueobjects"
)

func uintPtr(v uint) *uint { return &v }

func reconstructTicket(t *testing.T, status tvo.TicketStatus, orgID, vendorID, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(
		1,
		"MT-20260830-0001",
		"Leaking faucet",
		"The kitchen faucet drips constantly.",
		tvo.PriorityMedium,
		status,
		orgID,
		100,
		assigneeID,
		vendorID,
		nil,
		nil,
		nil,
		"", "", "", "",
		0,
		nil, nil, nil, nil, nil,
		1,
		now.Add(-time.Hour), now.Add(-time.Hour),
	)
	require.NoError(t, err)
	return tk
}

func orgAdminActor(orgID uint) access.Actor {
	return access.Actor{UserID: 2, Role: uvo.RoleOrgAdmin, OrganizationID: uintPtr(orgID)}
}

func maintenanceAdminActor(vendorID uint) access.Actor {
	return access.Actor{UserID: 4, Role: uvo.RoleMaintenanceAdmin, MaintenanceVendorID: uintPtr(vendorID)}
}

func technicianActor(userID, vendorID uint) access.Actor {
	return access.Actor{UserID: userID, Role: uvo.RoleTechnician, MaintenanceVendorID: uintPtr(vendorID)}
}
