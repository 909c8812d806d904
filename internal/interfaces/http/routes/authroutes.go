package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "fixwise/internal/interfaces/http/handlers/user"
)

type AuthRouteConfig struct {
	UserHandler *userhandlers.UserHandler
}

// SetupAuthRoutes registers the unauthenticated login endpoint.
func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", config.UserHandler.Login)
	}
}
