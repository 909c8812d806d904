package dto

import (
	"time"

	"fixwise/internal/domain/user"
)

type UserDTO struct {
	ID                  uint     `json:"id"`
	Email               string   `json:"email"`
	Name                string   `json:"name"`
	Role                string   `json:"role"`
	OrganizationID      *uint    `json:"organization_id,omitempty"`
	MaintenanceVendorID *uint    `json:"maintenance_vendor_id,omitempty"`
	Permissions         []string `json:"permissions,omitempty"`
	LocationIDs         []uint   `json:"location_ids,omitempty"`
	Active              bool     `json:"active"`
	LastLoginAt         *string  `json:"last_login_at,omitempty"`
	CreatedAt           string   `json:"created_at"`
}

func UserToDTO(u *user.User) *UserDTO {
	var lastLogin *string
	if u.LastLoginAt() != nil {
		s := u.LastLoginAt().Format(time.RFC3339)
		lastLogin = &s
	}
	perms := make([]string, 0)
	for _, p := range u.Permissions().Slice() {
		perms = append(perms, p.String())
	}
	return &UserDTO{
		ID:                  u.ID(),
		Email:               u.Email().String(),
		Name:                u.Name(),
		Role:                u.Role().String(),
		OrganizationID:      u.OrganizationID(),
		MaintenanceVendorID: u.MaintenanceVendorID(),
		Permissions:         perms,
		LocationIDs:         u.LocationIDs(),
		Active:              u.IsActive(),
		LastLoginAt:         lastLogin,
		CreatedAt:           u.CreatedAt().Format(time.RFC3339),
	}
}
