package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fixwise/internal/domain/access"
	"fixwise/internal/domain/user"
	"fixwise/internal/infrastructure/auth"
	"fixwise/internal/shared/constants"
	"fixwise/internal/shared/logger"
	"fixwise/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.UserRepository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and resolves the full actor for the
// request. The user record is loaded fresh so deactivation and permission
// changes apply without waiting for token expiry.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			m.logger.Warnw("token references unknown user", "user_id", claims.UserID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if !u.IsActive() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "account is deactivated")
			c.Abort()
			return
		}

		actor := access.Actor{
			UserID:              u.ID(),
			Role:                u.Role(),
			OrganizationID:      u.OrganizationID(),
			MaintenanceVendorID: u.MaintenanceVendorID(),
			Permissions:         u.Permissions(),
			LocationIDs:         u.LocationIDs(),
		}

		c.Set(constants.ContextKeyActor, actor)
		c.Set(constants.ContextKeyUserID, u.ID())

		c.Next()
	}
}

// ActorFromContext retrieves the actor resolved by RequireAuth.
func ActorFromContext(c *gin.Context) (access.Actor, bool) {
	value, exists := c.Get(constants.ContextKeyActor)
	if !exists {
		return access.Actor{}, false
	}

	actor, ok := value.(access.Actor)
	return actor, ok
}
