package routes

import (
	"github.com/gin-gonic/gin"

	marketplacehandlers "fixwise/internal/interfaces/http/handlers/marketplace"
	"fixwise/internal/interfaces/http/middleware"
)

type MarketplaceRouteConfig struct {
	BidHandler     *marketplacehandlers.BidHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupMarketplaceRoutes(engine *gin.Engine, config *MarketplaceRouteConfig) {
	bids := engine.Group("/marketplace/bids")
	bids.Use(config.AuthMiddleware.RequireAuth())
	{
		bids.POST("", config.BidHandler.SubmitBid)
		bids.GET("", config.BidHandler.ListBids)
		bids.POST("/:id/accept", config.BidHandler.AcceptBid)
		bids.POST("/:id/counter", config.BidHandler.CounterBid)
		bids.POST("/:id/reject", config.BidHandler.RejectBid)
	}
}
