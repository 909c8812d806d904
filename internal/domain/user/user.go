package user

import (
	"fmt"
	"strings"
	"time"

	vo "fixwise/internal/domain/user/valueobjects"
)

// User is the account aggregate. Role and scope fields (organization, vendor,
// granted locations) are the raw material the access package resolves
// capabilities from.
type User struct {
	id                  uint
	email               *vo.Email
	name                string
	role                vo.Role
	passwordHash        string
	organizationID      *uint
	maintenanceVendorID *uint
	permissions         vo.PermissionSet
	locationIDs         []uint
	active              bool
	lastLoginAt         *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

func NewUser(email *vo.Email, name string, role vo.Role, passwordHash string, organizationID, maintenanceVendorID *uint) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if role.RequiresOrganization() && organizationID == nil {
		return nil, fmt.Errorf("role %s requires an organization", role)
	}
	if role.RequiresVendor() && maintenanceVendorID == nil {
		return nil, fmt.Errorf("role %s requires a maintenance vendor", role)
	}
	if role.IsResidential() && (organizationID != nil || maintenanceVendorID != nil) {
		return nil, fmt.Errorf("residential users cannot belong to an organization or vendor")
	}

	now := time.Now()
	return &User{
		email:               email,
		name:                name,
		role:                role,
		passwordHash:        passwordHash,
		organizationID:      organizationID,
		maintenanceVendorID: maintenanceVendorID,
		permissions:         vo.PermissionSet{},
		locationIDs:         []uint{},
		active:              true,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructUser(
	id uint,
	email *vo.Email,
	name string,
	role vo.Role,
	passwordHash string,
	organizationID *uint,
	maintenanceVendorID *uint,
	permissions vo.PermissionSet,
	locationIDs []uint,
	active bool,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	if permissions == nil {
		permissions = vo.PermissionSet{}
	}
	if locationIDs == nil {
		locationIDs = []uint{}
	}

	return &User{
		id:                  id,
		email:               email,
		name:                name,
		role:                role,
		passwordHash:        passwordHash,
		organizationID:      organizationID,
		maintenanceVendorID: maintenanceVendorID,
		permissions:         permissions,
		locationIDs:         locationIDs,
		active:              active,
		lastLoginAt:         lastLoginAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (u *User) ID() uint                   { return u.id }
func (u *User) Email() *vo.Email           { return u.email }
func (u *User) Name() string               { return u.name }
func (u *User) Role() vo.Role              { return u.role }
func (u *User) PasswordHash() string       { return u.passwordHash }
func (u *User) OrganizationID() *uint      { return u.organizationID }
func (u *User) MaintenanceVendorID() *uint { return u.maintenanceVendorID }
func (u *User) IsActive() bool             { return u.active }
func (u *User) LastLoginAt() *time.Time    { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time       { return u.createdAt }
func (u *User) UpdatedAt() time.Time       { return u.updatedAt }

func (u *User) Permissions() vo.PermissionSet {
	return u.permissions
}

func (u *User) LocationIDs() []uint {
	ids := make([]uint, len(u.locationIDs))
	copy(ids, u.locationIDs)
	return ids
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// GrantPermissions replaces the permission set. Only subadmins carry grants;
// for every other role the set is derived from the role and not stored.
func (u *User) GrantPermissions(perms []vo.Permission) error {
	if !u.role.IsOrgSubadmin() {
		return fmt.Errorf("permissions can only be granted to org_subadmin users")
	}
	set, err := vo.NewPermissionSet(perms)
	if err != nil {
		return err
	}
	u.permissions = set
	u.updatedAt = time.Now()
	return nil
}

// AssignLocations replaces the set of locations a subadmin may act on.
func (u *User) AssignLocations(locationIDs []uint) error {
	if !u.role.IsOrgSubadmin() {
		return fmt.Errorf("locations can only be assigned to org_subadmin users")
	}
	if locationIDs == nil {
		locationIDs = []uint{}
	}
	u.locationIDs = locationIDs
	u.updatedAt = time.Now()
	return nil
}

func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
	u.updatedAt = now
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now()
}

func (u *User) Activate() {
	u.active = true
	u.updatedAt = time.Now()
}

func (u *User) ChangePassword(passwordHash string) error {
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}
