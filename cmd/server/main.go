// Package main is the entry point for the storeops API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"storeops/internal/domain/account"
	"storeops/internal/domain/auth"
	"storeops/internal/domain/category"
	"storeops/internal/domain/product"
	"storeops/internal/domain/shipment"
	"storeops/internal/domain/stockmovement"
	"storeops/internal/domain/store"
	v1 "storeops/internal/infrastructure/http/v1"
	"storeops/internal/infrastructure/storage/postgres"
	"storeops/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: env == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting storeops server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		log.Fatalw("failed to apply schema", "error", err)
	}

	// --- Repositories ---
	categoryRepo := postgres.NewCategoryRepo(pool)
	productRepo := postgres.NewProductRepo(pool)
	storeRepo := postgres.NewStoreRepo(pool)
	shipmentRepo := postgres.NewShipmentRepo(pool)
	movementRepo := postgres.NewMovementRepo(pool)
	accountRepo := postgres.NewAccountRepo(pool)
	transactionRepo := postgres.NewTransactionRepo(pool)
	userRepo := postgres.NewUserRepo(pool)

	// --- JWT ---
	jwtSecret := getEnv("JWT_SECRET", "change-me-in-production")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	// --- Services ---
	authService := auth.NewService(userRepo, jwtService)
	categoryService := category.NewService(categoryRepo)
	productService := product.NewService(productRepo)
	storeService := store.NewService(storeRepo)
	movementService := stockmovement.NewService(movementRepo)
	shipmentService := shipment.NewService(shipmentRepo, storeRepo, productRepo, movementService)
	accountService := account.NewService(accountRepo, transactionRepo)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:          log,
		Pool:            pool,
		Production:      env == "production",
		JWTValidator:    jwtService,
		AuthService:     authService,
		CategoryService: categoryService,
		ProductService:  productService,
		StoreService:    storeService,
		ShipmentService: shipmentService,
		MovementService: movementService,
		AccountService:  accountService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port, "env", env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// Periodic pool stats at debug granularity
	statsCtx, stopStats := context.WithCancel(ctx)
	defer stopStats()
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-statsCtx.Done():
				return
			case <-ticker.C:
				postgres.LogPoolStats(statsCtx, pool)
			}
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
