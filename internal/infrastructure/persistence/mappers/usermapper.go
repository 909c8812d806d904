package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"fixwise/internal/domain/user"
	vo "fixwise/internal/domain/user/valueobjects"
	"fixwise/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:                  u.ID(),
		Email:               u.Email().String(),
		Name:                u.Name(),
		Role:                u.Role().String(),
		PasswordHash:        u.PasswordHash(),
		OrganizationID:      u.OrganizationID(),
		MaintenanceVendorID: u.MaintenanceVendorID(),
		Active:              u.IsActive(),
		LastLoginAt:         timePtrToMillis(u.LastLoginAt()),
		CreatedAt:           u.CreatedAt().UnixMilli(),
		UpdatedAt:           u.UpdatedAt().UnixMilli(),
	}

	if perms := u.Permissions().Slice(); len(perms) > 0 {
		permsJSON, _ := json.Marshal(perms)
		model.Permissions = datatypes.JSON(permsJSON)
	}
	if locations := u.LocationIDs(); len(locations) > 0 {
		locationsJSON, _ := json.Marshal(locations)
		model.LocationIDs = datatypes.JSON(locationsJSON)
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid user email (id=%d): %w", model.ID, err)
	}
	role, err := vo.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("invalid user role (id=%d): %w", model.ID, err)
	}

	permissions := vo.PermissionSet{}
	if len(model.Permissions) > 0 {
		var perms []vo.Permission
		if err := json.Unmarshal(model.Permissions, &perms); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user permissions (id=%d): %w", model.ID, err)
		}
		permissions, err = vo.NewPermissionSet(perms)
		if err != nil {
			return nil, fmt.Errorf("invalid user permissions (id=%d): %w", model.ID, err)
		}
	}

	var locationIDs []uint
	if len(model.LocationIDs) > 0 {
		if err := json.Unmarshal(model.LocationIDs, &locationIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user locations (id=%d): %w", model.ID, err)
		}
	}

	return user.ReconstructUser(
		model.ID,
		email,
		model.Name,
		role,
		model.PasswordHash,
		model.OrganizationID,
		model.MaintenanceVendorID,
		permissions,
		locationIDs,
		model.Active,
		millisPtrToTime(model.LastLoginAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
