package routes

import (
	"github.com/gin-gonic/gin"

	billinghandlers "fixwise/internal/interfaces/http/handlers/billing"
	"fixwise/internal/interfaces/http/middleware"
)

type BillingRouteConfig struct {
	BillingHandler *billinghandlers.BillingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupBillingRoutes(engine *gin.Engine, config *BillingRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.GET("/:id/work-orders", config.BillingHandler.ListWorkOrders)
	}

	invoices := engine.Group("/invoices")
	invoices.Use(config.AuthMiddleware.RequireAuth())
	{
		invoices.POST("", config.BillingHandler.CreateInvoice)
		invoices.GET("", config.BillingHandler.ListInvoices)
		invoices.POST("/:id/pay", config.BillingHandler.PayInvoice)
		invoices.GET("/:id", config.BillingHandler.GetInvoice)
	}
}
