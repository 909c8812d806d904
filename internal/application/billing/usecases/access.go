package usecases

import (
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/billing"
	vo "fixwise/internal/domain/user/valueobjects"
)

// canViewInvoice gates invoice reads: the issuing vendor, the billed
// organization, and root. Subadmins additionally need the view_invoices
// grant.
func canViewInvoice(actor access.Actor, inv *billing.Invoice) bool {
	switch actor.Role {
	case vo.RoleRoot:
		return true
	case vo.RoleOrgAdmin:
		return invoiceOrganizationMatches(actor, inv)
	case vo.RoleOrgSubadmin:
		return invoiceOrganizationMatches(actor, inv) &&
			(actor.HasPermission(vo.PermissionViewInvoices) || actor.HasPermission(vo.PermissionPayInvoices))
	case vo.RoleMaintenanceAdmin:
		return actor.MaintenanceVendorID != nil && *actor.MaintenanceVendorID == inv.MaintenanceVendorID()
	}
	return false
}

// canPayInvoice gates payment recording: the billed organization and root.
// The issuing vendor does not mark its own invoices paid.
func canPayInvoice(actor access.Actor, inv *billing.Invoice) bool {
	switch actor.Role {
	case vo.RoleRoot:
		return true
	case vo.RoleOrgAdmin:
		return invoiceOrganizationMatches(actor, inv)
	case vo.RoleOrgSubadmin:
		return invoiceOrganizationMatches(actor, inv) && actor.HasPermission(vo.PermissionPayInvoices)
	}
	return false
}

func invoiceOrganizationMatches(actor access.Actor, inv *billing.Invoice) bool {
	return actor.OrganizationID != nil &&
		inv.OrganizationID() != nil &&
		*actor.OrganizationID == *inv.OrganizationID()
}
