package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixwise/internal/interfaces/http/middleware"
	"fixwise/internal/interfaces/http/routes"
)

// setupEngine installs the global middleware chain and mounts every route
// group on the container's engine.
func (c *Container) setupEngine() {
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	if c.rateLimiter != nil {
		c.engine.Use(c.rateLimiter.Limit())
	}

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		UserHandler: c.userHandler,
	})
	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		UserHandler:    c.userHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:  c.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupMarketplaceRoutes(c.engine, &routes.MarketplaceRouteConfig{
		BidHandler:     c.bidHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupBillingRoutes(c.engine, &routes.BillingRouteConfig{
		BillingHandler: c.billingHandler,
		AuthMiddleware: c.authMiddleware,
	})
}
