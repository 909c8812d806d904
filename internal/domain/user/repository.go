package user

import (
	"context"

	vo "fixwise/internal/domain/user/valueobjects"
)

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filters UserFilter) ([]*User, int64, error)
}

type UserFilter struct {
	Role                *vo.Role
	OrganizationID      *uint
	MaintenanceVendorID *uint
	Active              *bool
	Page                int
	PageSize            int
}
