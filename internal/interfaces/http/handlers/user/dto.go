package user

import (
	"time"

	"fixwise/internal/application/user/dto"
	"fixwise/internal/application/user/usecases"
	"fixwise/internal/domain/access"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *dto.UserDTO `json:"user"`
}

type CreateUserRequest struct {
	Email               string   `json:"email" binding:"required,email"`
	Name                string   `json:"name" binding:"required,max=200"`
	Password            string   `json:"password" binding:"required,min=8,max=72"`
	Role                string   `json:"role" binding:"required"`
	OrganizationID      *uint    `json:"organization_id,omitempty"`
	MaintenanceVendorID *uint    `json:"maintenance_vendor_id,omitempty"`
	Permissions         []string `json:"permissions,omitempty"`
	LocationIDs         []uint   `json:"location_ids,omitempty"`
}

func (r *CreateUserRequest) ToCommand(actor access.Actor) usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Actor:               actor,
		Email:               r.Email,
		Name:                r.Name,
		Password:            r.Password,
		Role:                r.Role,
		OrganizationID:      r.OrganizationID,
		MaintenanceVendorID: r.MaintenanceVendorID,
		Permissions:         r.Permissions,
		LocationIDs:         r.LocationIDs,
	}
}
