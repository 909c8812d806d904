package usecases

import (
	"context"
	"time"

	"fixwise/internal/application/user/dto"
	"fixwise/internal/domain/user"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *dto.UserDTO
}

type LoginUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		// Same answer for unknown email and bad password.
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}
	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("account is deactivated")
	}
	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresAt, err := uc.tokens.GenerateToken(u)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		// Login still succeeds if the timestamp write fails.
		uc.logger.Warnw("failed to record login time", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: dto.UserToDTO(u)}, nil
}
