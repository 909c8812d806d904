package usecases

import (
	"context"

	"fixwise/internal/application/user/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/organization"
	"fixwise/internal/domain/user"
	vo "fixwise/internal/domain/user/valueobjects"
	"fixwise/internal/domain/vendorentity"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type CreateUserCommand struct {
	Actor               access.Actor
	Email               string
	Name                string
	Password            string
	Role                string
	OrganizationID      *uint
	MaintenanceVendorID *uint
	Permissions         []string
	LocationIDs         []uint
}

type CreateUserResult struct {
	User *dto.UserDTO
}

// CreateUserUseCase provisions accounts. Root creates anyone; organization
// admins create subadmins inside their own organization; vendor admins
// create technicians inside their own vendor.
type CreateUserUseCase struct {
	userRepo   user.UserRepository
	orgRepo    organization.OrganizationRepository
	vendorRepo vendor.VendorRepository
	hasher     PasswordHasher
	logger     logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.UserRepository,
	orgRepo organization.OrganizationRepository,
	vendorRepo vendor.VendorRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		vendorRepo: vendorRepo,
		hasher:     hasher,
		logger:     logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	uc.logger.Infow("executing create user use case", "email", cmd.Email, "role", cmd.Role, "actor_id", cmd.Actor.UserID)

	role, err := vo.NewRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}
	if err := uc.authorize(cmd.Actor, role, cmd.OrganizationID, cmd.MaintenanceVendorID); err != nil {
		return nil, err
	}

	if cmd.OrganizationID != nil {
		if _, err := uc.orgRepo.GetByID(ctx, *cmd.OrganizationID); err != nil {
			return nil, errors.NewValidationError("organization not found")
		}
	}
	if cmd.MaintenanceVendorID != nil {
		if _, err := uc.vendorRepo.GetByID(ctx, *cmd.MaintenanceVendorID); err != nil {
			return nil, errors.NewValidationError("maintenance vendor not found")
		}
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email); err == nil && existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	u, err := user.NewUser(email, cmd.Name, role, hash, cmd.OrganizationID, cmd.MaintenanceVendorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.Permissions) > 0 {
		perms := make([]vo.Permission, 0, len(cmd.Permissions))
		for _, p := range cmd.Permissions {
			perm, err := vo.NewPermission(p)
			if err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			perms = append(perms, perm)
		}
		if err := u.GrantPermissions(perms); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if len(cmd.LocationIDs) > 0 {
		if err := u.AssignLocations(cmd.LocationIDs); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to save user", "email", cmd.Email, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", u.Role())
	return &CreateUserResult{User: dto.UserToDTO(u)}, nil
}

func (uc *CreateUserUseCase) authorize(actor access.Actor, role vo.Role, orgID, vendorID *uint) error {
	switch actor.Role {
	case vo.RoleRoot:
		return nil
	case vo.RoleOrgAdmin:
		if role == vo.RoleOrgSubadmin &&
			actor.OrganizationID != nil && orgID != nil && *actor.OrganizationID == *orgID {
			return nil
		}
	case vo.RoleMaintenanceAdmin:
		if role == vo.RoleTechnician &&
			actor.MaintenanceVendorID != nil && vendorID != nil && *actor.MaintenanceVendorID == *vendorID {
			return nil
		}
	}
	return errors.NewForbiddenError("caller may not create this account")
}
