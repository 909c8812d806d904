package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "fixwise/internal/interfaces/http/handlers/user"
	"fixwise/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.POST("", config.UserHandler.CreateUser)
	}
}
