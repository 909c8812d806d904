package access

import (
	"fixwise/internal/domain/ticket"
	vo "fixwise/internal/domain/user/valueobjects"
)

// Capabilities is the set of actions an actor may take on one ticket.
type Capabilities struct {
	CanView       bool
	CanAccept     bool
	CanReject     bool
	CanStart      bool
	CanComplete   bool
	CanConfirm    bool
	CanForceClose bool
	CanInvoice    bool
}

func allCapabilities() Capabilities {
	return Capabilities{
		CanView:       true,
		CanAccept:     true,
		CanReject:     true,
		CanStart:      true,
		CanComplete:   true,
		CanConfirm:    true,
		CanForceClose: true,
		CanInvoice:    true,
	}
}

// ResolveCapabilities is the single source of truth for ticket authorization.
// It is a pure function of the actor and the ticket; handlers and use cases
// consult it and never re-derive scope rules inline.
//
// Unmatched combinations deny everything.
func ResolveCapabilities(actor Actor, t *ticket.Ticket) Capabilities {
	if t == nil {
		return Capabilities{}
	}

	caps := resolveByRole(actor, t)

	// The original reporter may always view their ticket and pass judgment on
	// completed work, whatever their role.
	if t.ReporterID() == actor.UserID {
		caps.CanView = true
		caps.CanConfirm = true
	}

	return caps
}

func resolveByRole(actor Actor, t *ticket.Ticket) Capabilities {
	switch actor.Role {
	case vo.RoleRoot:
		return allCapabilities()

	case vo.RoleOrgAdmin:
		if sameOrganization(actor, t) {
			return allCapabilities()
		}

	case vo.RoleOrgSubadmin:
		if !sameOrganization(actor, t) {
			break
		}
		if t.LocationID() != nil && !actor.HasLocation(*t.LocationID()) {
			break
		}
		canAccept := actor.HasPermission(vo.PermissionAcceptTicket)
		return Capabilities{
			CanView:       true,
			CanAccept:     canAccept,
			CanReject:     canAccept,
			CanConfirm:    canAccept,
			CanForceClose: canAccept,
		}

	case vo.RoleMaintenanceAdmin:
		if sameVendor(actor, t) {
			return Capabilities{
				CanView:     true,
				CanAccept:   true,
				CanReject:   true,
				CanComplete: true,
				CanInvoice:  true,
			}
		}

	case vo.RoleTechnician:
		if t.AssigneeID() != nil && *t.AssigneeID() == actor.UserID {
			return Capabilities{
				CanView:     true,
				CanStart:    true,
				CanComplete: true,
			}
		}

	case vo.RoleResidential:
		if t.ReporterID() == actor.UserID {
			return Capabilities{CanView: true}
		}
	}

	return Capabilities{}
}

func sameOrganization(actor Actor, t *ticket.Ticket) bool {
	return actor.OrganizationID != nil &&
		t.OrganizationID() != nil &&
		*actor.OrganizationID == *t.OrganizationID()
}

func sameVendor(actor Actor, t *ticket.Ticket) bool {
	return actor.MaintenanceVendorID != nil &&
		t.MaintenanceVendorID() != nil &&
		*actor.MaintenanceVendorID == *t.MaintenanceVendorID()
}
