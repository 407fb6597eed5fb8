package routes

import (
	"context"
	"log"

	_ "letterpress_ops/docs" // This will be auto-generated
	"letterpress_ops/internal/adapter/http/handlers"
	"letterpress_ops/internal/adapter/http/middleware"
	repository2 "letterpress_ops/internal/adapter/persistence/repository"
	"letterpress_ops/internal/config"
	"letterpress_ops/internal/infrastructure/database"
	"letterpress_ops/internal/infrastructure/storage"
	"letterpress_ops/internal/pricing"
	"letterpress_ops/internal/usecase"
	"letterpress_ops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the route table needs.
type Handlers struct {
	Estimates *handlers.EstimateHandler
	Versions  *handlers.VersionHandler
	Orders    *handlers.OrderHandler
}

// Run will start the server
func Run(cfg *config.Config) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	h, err := buildHandlers(cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	router := NewRouter(cfg, h)

	err = router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine. The auth middleware only guards /v1
// routes other than ping.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Authenticate(cfg))
	addPricingRoutes(protected, h.Estimates)
	addEstimateRoutes(protected, h.Estimates)
	addClientRoutes(protected, h.Estimates, h.Versions)
	addOrderRoutes(protected, h.Orders)

	return router
}

func buildHandlers(cfg *config.Config) (Handlers, error) {
	policy, err := cfg.PricingPolicy()
	if err != nil {
		return Handlers{}, err
	}

	ddb := database.ConnectDynamoDB(cfg)

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb, cfg.EstimatesTable)
	orderRepo := repository2.NewOrderDynamoRepository(ddb, cfg.OrdersTable, cfg.EstimatesTable)
	staffRepo := repository2.NewStaffDynamoRepository(ddb, cfg.StaffTable)
	counterRepo := repository2.NewCounterDynamoRepository(ddb, cfg.CountersTable)

	staffDirectory := usecase.NewStaffDirectory(staffRepo, cfg.StaffCacheTTL)

	var artwork interfaces.IArtworkStorage
	s3Storage, err := storage.NewS3ArtworkStorage(context.Background(), cfg)
	if err != nil {
		log.Printf("[artwork][routes] artwork storage not configured: %v", err)
	} else {
		artwork = s3Storage
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, orderRepo, counterRepo, pricing.NewEngine(policy))
	versionUseCase := usecase.NewVersionTransferUseCase(estimateRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, staffDirectory, artwork)

	return Handlers{
		Estimates: handlers.NewEstimateHandler(estimateUseCase),
		Versions:  handlers.NewVersionHandler(versionUseCase),
		Orders:    handlers.NewOrderHandler(orderUseCase),
	}, nil
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.CORS(cfg))
}
