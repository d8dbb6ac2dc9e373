package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"inventory-service/internal/handler"
	"inventory-service/internal/ledger"
	mid "inventory-service/internal/middleware"
	"inventory-service/pkg/config"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting inventory-service",
		zap.String("environment", cfg.Server.Env),
		zap.String("port", cfg.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", cfg.Metrics.Prefix))

	// The ledger is the single owner of all application state. It lives for
	// the process lifetime and is handed to each handler explicitly; state
	// is lost on exit by design.
	lgr := ledger.New()
	log.Info("In-memory ledger initialized",
		zap.String("default_entry_date", cfg.Ledger.DefaultEntryDate.String()))

	items := handler.NewItemHandler(lgr)
	movements := handler.NewMovementHandler(lgr, cfg.Ledger)

	// Initialize Echo instance
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Item catalog routes
	itemAPI := e.Group("/api/items")
	itemAPI.GET("", items.ListItems)
	itemAPI.GET("/:id", items.GetItem)
	itemAPI.POST("", items.CreateItem)

	// Movement and transaction log routes
	e.POST("/api/movements", movements.RecordMovement)
	e.GET("/api/transactions", movements.ListTransactions)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
