package usecases

import (
	"context"
	"time"

	"fixwise/internal/domain/user"
)

// PasswordHasher abstracts the credential hash so tests do not pay the
// bcrypt cost.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenService issues the signed bearer tokens handed out at login.
type TokenService interface {
	GenerateToken(u *user.User) (token string, expiresAt time.Time, err error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error)
}
