package routes

import (
	"letterpress_ops/internal/adapter/http/handlers"
	"letterpress_ops/internal/adapter/http/middleware"
	"letterpress_ops/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing   = "/pricing"
	PathEstimates = "/estimates"
	PathClients   = "/clients"
	PathOrders    = "/orders"
)

func addPricingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/compute", estimateHandler.ComputePricing)
	}
}

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("/:id", estimateHandler.GetEstimate)
	}

	manage := estimates.Group("", middleware.RequireRole(entities.RoleAdmin, entities.RoleStaff))
	{
		manage.POST("", estimateHandler.CreateEstimate)
		manage.POST("/:id/cancel", estimateHandler.CancelEstimate)
		manage.POST("/:id/escrow", estimateHandler.SetEscrow)
		manage.POST("/:id/convert", estimateHandler.ConvertToOrder)
	}
}

func addClientRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, versionHandler *handlers.VersionHandler) {
	clients := rg.Group(PathClients + "/:client_id")
	{
		clients.GET("/estimates", estimateHandler.ListClientEstimates)
		clients.GET("/versions/stats", versionHandler.VersionStatistics)
		clients.POST("/versions/transfer", middleware.RequireRole(entities.RoleAdmin, entities.RoleStaff), versionHandler.TransferVersions)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/dashboard", orderHandler.Dashboard)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("/:id/stage", orderHandler.ChangeStage)
		orders.POST("/:id/assignment", orderHandler.AssignProduction)
		orders.POST("/:id/artwork", orderHandler.UploadArtwork)
		orders.GET("/:id/artwork", orderHandler.ListArtwork)
	}
}
