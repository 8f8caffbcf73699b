package main

import (
	"listing-service/internal/handler"
	mid "listing-service/internal/middleware"
	"listing-service/internal/store"
	"listing-service/internal/store/gormstore"
	"listing-service/internal/store/memory"
	"listing-service/pkg/config"
	"listing-service/pkg/database"
	"listing-service/pkg/logger"
	"listing-service/pkg/validate"
	"listing-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting listing-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize the store. The memory driver is the default and carries
	// the built-in sample data; postgres is explicit opt-in.
	var st store.Store
	switch appConfig.Storage.Driver {
	case "postgres":
		db, err := database.Connect(appConfig)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		st, err = gormstore.New(db)
		if err != nil {
			log.Fatal("Failed to initialize store", zap.Error(err))
		}
		log.Info("Database connection established")
	case "memory":
		st = memory.New()
		log.Info("In-memory store seeded")
	default:
		log.Fatal("Unknown storage driver", zap.String("driver", appConfig.Storage.Driver))
	}

	// Initialize Echo instance
	e := echo.New()
	e.Validator = validate.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Listing routes
	listings := handler.NewListingHandler(st)
	e.GET("/listings", listings.List)
	e.GET("/listings/:id", listings.Get)
	e.POST("/listings", listings.Create)
	e.PATCH("/listings/:id", listings.Update)
	e.DELETE("/listings/:id", listings.Delete)

	// Account routes
	accounts := handler.NewAccountHandler(st)
	e.GET("/accounts/:id/listings", accounts.Listings)
	e.GET("/session/current-account", accounts.Current)

	// Catalog routes
	catalog := handler.NewCatalogHandler(st)
	e.GET("/catalog/meta", catalog.Meta)
	e.GET("/catalog/stats", catalog.Stats)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
