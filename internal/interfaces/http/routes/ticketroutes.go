package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "fixwise/internal/interfaces/http/handlers/ticket"
	"fixwise/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Lifecycle transitions
		tickets.POST("/:id/accept", config.TicketHandler.AcceptTicket)
		tickets.POST("/:id/reject", config.TicketHandler.RejectTicket)
		tickets.POST("/:id/marketplace", config.TicketHandler.SendToMarketplace)
		tickets.POST("/:id/start", config.TicketHandler.StartWork)
		tickets.POST("/:id/complete", config.TicketHandler.CompleteWork)
		tickets.POST("/:id/confirm", config.TicketHandler.ConfirmCompletion)
		tickets.POST("/:id/force-close", config.TicketHandler.ForceClose)

		// Discussion and history
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.GET("/:id/comments", config.TicketHandler.ListComments)
		tickets.GET("/:id/milestones", config.TicketHandler.ListMilestones)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
	}
}
