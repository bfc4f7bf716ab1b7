package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kubaxi/service-funnel/internal/application"
	"github.com/kubaxi/service-funnel/internal/config"
	"github.com/kubaxi/service-funnel/internal/database"
	"github.com/kubaxi/service-funnel/internal/domain/trip"
	"github.com/kubaxi/service-funnel/internal/events"
	"github.com/kubaxi/service-funnel/internal/funnel"
	"github.com/kubaxi/service-funnel/internal/handler"
	"github.com/kubaxi/service-funnel/internal/logger"
	"github.com/kubaxi/service-funnel/internal/middleware"
	"github.com/kubaxi/service-funnel/internal/repository"
	"github.com/kubaxi/service-funnel/internal/whatsapp"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-funnel")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-funnel",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DB.DSN(), log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.LocationModel{},
			&repository.RouteModel{},
			&repository.ExcursionModel{},
			&repository.TravelPackageModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	}

	// Initialize Kafka producer for lead analytics
	producer := events.NewProducer(cfg.Kafka.Brokers, log)
	defer func() { _ = producer.Close() }()

	// Initialize repositories
	locationRepo := repository.NewGormLocationRepository(db)
	catalogRepo := repository.NewGormCatalogRepository(db)
	routeRepo := repository.NewGormRouteRepository(db)

	// Initialize application services
	directoryService := application.NewDirectoryService(locationRepo, log)
	catalogService := application.NewCatalogService(catalogRepo, log)
	quoteService := application.NewQuoteService(routeRepo, trip.NewStandardPricingStrategy(), log)

	dispatcher := whatsapp.NewDispatcher(cfg.WhatsApp.Host, cfg.WhatsApp.Recipient, log)
	requestService := application.NewRequestService(dispatcher, producer, cfg.Kafka.Topic, log)

	// Initialize the session manager for server-held forms
	sessionManager := funnel.NewManager(quoteService, requestService, catalogService, log)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Register routes
	handler.NewHealthHandler(db).RegisterRoutes(&router.RouterGroup)
	handler.NewDirectoryHandler(directoryService).RegisterRoutes(&router.RouterGroup)
	handler.NewCatalogHandler(catalogService).RegisterRoutes(&router.RouterGroup)
	handler.NewQuoteHandler(quoteService).RegisterRoutes(&router.RouterGroup)
	handler.NewRequestHandler(requestService).RegisterRoutes(&router.RouterGroup)
	handler.NewSessionHandler(sessionManager).RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-funnel...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-funnel stopped")
}
