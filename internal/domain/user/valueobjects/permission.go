package valueobjects

import "fmt"

// Permission is a grant held by org_subadmin users. Other roles derive their
// abilities from the role itself and ignore this set.
type Permission string

const (
	PermissionPlaceTicket  Permission = "place_ticket"
	PermissionAcceptTicket Permission = "accept_ticket"
	PermissionViewInvoices Permission = "view_invoices"
	PermissionPayInvoices  Permission = "pay_invoices"
)

var validPermissions = map[Permission]bool{
	PermissionPlaceTicket:  true,
	PermissionAcceptTicket: true,
	PermissionViewInvoices: true,
	PermissionPayInvoices:  true,
}

func (p Permission) String() string {
	return string(p)
}

func (p Permission) IsValid() bool {
	return validPermissions[p]
}

func NewPermission(s string) (Permission, error) {
	p := Permission(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid permission: %s", s)
	}
	return p, nil
}

// PermissionSet is the collection of grants attached to a user.
type PermissionSet map[Permission]bool

func NewPermissionSet(perms []Permission) (PermissionSet, error) {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		if !p.IsValid() {
			return nil, fmt.Errorf("invalid permission: %s", p)
		}
		set[p] = true
	}
	return set, nil
}

func (s PermissionSet) Has(p Permission) bool {
	return s[p]
}

func (s PermissionSet) Slice() []Permission {
	perms := make([]Permission, 0, len(s))
	for _, p := range []Permission{PermissionPlaceTicket, PermissionAcceptTicket, PermissionViewInvoices, PermissionPayInvoices} {
		if s[p] {
			perms = append(perms, p)
		}
	}
	return perms
}
