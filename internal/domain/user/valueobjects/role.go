package valueobjects

import "fmt"

// Role is the closed set of platform roles. Authorization never consults a
// free-form role string; every comparison goes through these constants.
type Role string

const (
	RoleRoot             Role = "root"
	RoleOrgAdmin         Role = "org_admin"
	RoleOrgSubadmin      Role = "org_subadmin"
	RoleMaintenanceAdmin Role = "maintenance_admin"
	RoleTechnician       Role = "technician"
	RoleResidential      Role = "residential"
)

var validRoles = map[Role]bool{
	RoleRoot:             true,
	RoleOrgAdmin:         true,
	RoleOrgSubadmin:      true,
	RoleMaintenanceAdmin: true,
	RoleTechnician:       true,
	RoleResidential:      true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsRoot() bool {
	return r == RoleRoot
}

func (r Role) IsOrgAdmin() bool {
	return r == RoleOrgAdmin
}

func (r Role) IsOrgSubadmin() bool {
	return r == RoleOrgSubadmin
}

func (r Role) IsMaintenanceAdmin() bool {
	return r == RoleMaintenanceAdmin
}

func (r Role) IsTechnician() bool {
	return r == RoleTechnician
}

func (r Role) IsResidential() bool {
	return r == RoleResidential
}

// RequiresOrganization reports whether users of this role must belong to a
// customer organization.
func (r Role) RequiresOrganization() bool {
	return r == RoleOrgAdmin || r == RoleOrgSubadmin
}

// RequiresVendor reports whether users of this role must belong to a
// maintenance vendor.
func (r Role) RequiresVendor() bool {
	return r == RoleMaintenanceAdmin || r == RoleTechnician
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
