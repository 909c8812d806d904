package access

import (
	vo "fixwise/internal/domain/user/valueobjects"
)

// Actor is the request-scoped identity resolved once by the authentication
// middleware and passed explicitly into every use case. Business logic never
// reads identity from ambient state.
type Actor struct {
	UserID              uint
	Role                vo.Role
	OrganizationID      *uint
	MaintenanceVendorID *uint
	Permissions         vo.PermissionSet
	LocationIDs         []uint
}

func (a Actor) HasPermission(p vo.Permission) bool {
	return a.Permissions.Has(p)
}

func (a Actor) HasLocation(locationID uint) bool {
	for _, id := range a.LocationIDs {
		if id == locationID {
			return true
		}
	}
	return false
}
