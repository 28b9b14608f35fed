// Package v1 provides the HTTP API.
package v1

import (
	"github.com/gin-gonic/gin"

	"storeops/internal/domain/account"
	"storeops/internal/domain/auth"
	"storeops/internal/domain/category"
	"storeops/internal/domain/product"
	"storeops/internal/domain/shipment"
	"storeops/internal/domain/stockmovement"
	"storeops/internal/domain/store"
	"storeops/internal/infrastructure/http/v1/handlers"
	"storeops/internal/infrastructure/http/v1/middleware"
	"storeops/internal/infrastructure/storage/postgres"
	"storeops/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Logger     *logger.Logger
	Pool       *postgres.Pool
	Production bool

	JWTValidator middleware.TokenValidator

	AuthService      *auth.Service
	CategoryService  *category.Service
	ProductService   *product.Service
	StoreService     *store.Service
	ShipmentService  *shipment.Service
	MovementService  *stockmovement.Service
	AccountService   *account.Service
}

// NewRouter creates and configures the Gin router. Reads are public;
// every mutating route requires a valid bearer token.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler(cfg.Production))

	base := handlers.NewBaseHandler()

	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	api := router.Group("/api")
	authed := api.Group("", middleware.Auth(cfg.JWTValidator))

	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	categoryHandler := handlers.NewCategoryHandler(base, cfg.CategoryService)
	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id", categoryHandler.Get)
	authed.POST("/categories", categoryHandler.Create)
	authed.PUT("/categories/:id", categoryHandler.Update)
	authed.DELETE("/categories/:id", categoryHandler.Delete)

	productHandler := handlers.NewProductHandler(base, cfg.ProductService)
	api.GET("/products", productHandler.List)
	api.GET("/products/low-stock", productHandler.LowStock)
	api.GET("/products/export", productHandler.Export)
	api.GET("/products/:id", productHandler.Get)
	authed.POST("/products", productHandler.Create)
	authed.PUT("/products/:id", productHandler.Update)
	authed.DELETE("/products/:id", productHandler.Delete)
	authed.PATCH("/products/:id/stock", productHandler.UpdateStock)
	authed.POST("/products/:id/barcode", productHandler.AssignBarcode)

	storeHandler := handlers.NewStoreHandler(base, cfg.StoreService)
	api.GET("/stores", storeHandler.List)
	api.GET("/stores/:id", storeHandler.Get)
	authed.POST("/stores", storeHandler.Create)
	authed.PUT("/stores/:id", storeHandler.Update)
	authed.DELETE("/stores/:id", storeHandler.Delete)

	shipmentHandler := handlers.NewShipmentHandler(base, cfg.ShipmentService)
	api.GET("/shipments", shipmentHandler.List)
	api.GET("/shipments/overdue", shipmentHandler.Overdue)
	api.GET("/shipments/stats", shipmentHandler.Stats)
	api.GET("/shipments/:id", shipmentHandler.Get)
	authed.POST("/shipments", shipmentHandler.Create)
	authed.PUT("/shipments/:id", shipmentHandler.Update)
	authed.PATCH("/shipments/:id/status", shipmentHandler.UpdateStatus)
	authed.DELETE("/shipments/:id", shipmentHandler.Delete)

	movementHandler := handlers.NewMovementHandler(base, cfg.MovementService)
	api.GET("/stock-movements", movementHandler.List)

	accountHandler := handlers.NewAccountHandler(base, cfg.AccountService)
	api.GET("/accounts", accountHandler.List)
	api.GET("/accounts/:id", accountHandler.Get)
	api.GET("/accounts/:id/transactions", accountHandler.ListTransactions)
	authed.POST("/accounts", accountHandler.Create)
	authed.PUT("/accounts/:id", accountHandler.Update)
	authed.DELETE("/accounts/:id", accountHandler.Delete)
	authed.POST("/accounts/:id/transactions", accountHandler.CreateTransaction)
	authed.DELETE("/accounts/:id/transactions/:txId", accountHandler.DeleteTransaction)

	return router
}
