package main

// @title Garden Planner API
// @version 1.0.0
// @description Service for planning plantings on raised garden beds. Tracks plant, pest, treatment and care catalogs, computes plant placement diagrams for each bed, and maintains a care calendar generated from planting dates.
// @description
// @description Main features:
// @description - Raised bed registry with planting history
// @description - Plant catalog with pest and care links
// @description - Planting (culture) lifecycle with row and alignment layout
// @description - Bed diagrams as JSON coordinates or SVG
// @description - Care calendar generated asynchronously from planting events

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/garden-planner/docs"
	"github.com/garden-planner/internal/config"
	httpDelivery "github.com/garden-planner/internal/delivery/http"
	"github.com/garden-planner/internal/delivery/http/handler"
	"github.com/garden-planner/internal/layout"
	"github.com/garden-planner/internal/pkg/logger"
	"github.com/garden-planner/internal/repository/cache"
	"github.com/garden-planner/internal/repository/postgres"
	redisRepo "github.com/garden-planner/internal/repository/redis"
	"github.com/garden-planner/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Garden Planner API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	bedRepo := postgres.NewBedRepository(db)
	plantRepo := postgres.NewPlantRepository(db)
	cultureRepo := postgres.NewCultureRepository(db)
	pestRepo := postgres.NewPestRepository(db)
	treatmentRepo := postgres.NewTreatmentRepository(db)
	careRepo := postgres.NewCareRepository(db)
	calendarRepo := postgres.NewCalendarRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	bedUC := usecase.NewBedUseCase(bedRepo, cultureRepo, cacheRepo, log)
	plantUC := usecase.NewPlantUseCase(plantRepo, pestRepo, careRepo, log)
	cultureUC := usecase.NewCultureUseCase(
		cultureRepo,
		bedRepo,
		plantRepo,
		treatmentRepo,
		careRepo,
		calendarRepo,
		cacheRepo,
		streamRepo,
		log,
	)
	pestUC := usecase.NewPestUseCase(pestRepo, treatmentRepo, log)
	treatmentUC := usecase.NewTreatmentUseCase(treatmentRepo, log)
	careUC := usecase.NewCareUseCase(careRepo, log)
	calendarUC := usecase.NewCalendarUseCase(
		calendarRepo,
		cultureRepo,
		plantRepo,
		treatmentRepo,
		careRepo,
		log,
	)
	diagramUC := usecase.NewDiagramUseCase(
		bedRepo,
		cultureRepo,
		cacheRepo,
		layout.Config{
			SurfaceWidth:  cfg.Diagram.SurfaceWidth,
			SurfaceHeight: cfg.Diagram.SurfaceHeight,
			ShowGrid:      cfg.Diagram.ShowGrid,
		},
		cfg.Cache.DiagramCacheTTL,
		log,
	)
	summaryUC := usecase.NewSummaryUseCase(statsRepo, cacheRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	bedHandler := handler.NewBedHandler(bedUC, diagramUC, log)
	plantHandler := handler.NewPlantHandler(plantUC, log)
	cultureHandler := handler.NewCultureHandler(cultureUC, calendarUC, log)
	pestHandler := handler.NewPestHandler(pestUC, log)
	treatmentHandler := handler.NewTreatmentHandler(treatmentUC, log)
	careHandler := handler.NewCareHandler(careUC, log)
	calendarHandler := handler.NewCalendarHandler(calendarUC, log)
	summaryHandler := handler.NewSummaryHandler(summaryUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		bedHandler,
		plantHandler,
		cultureHandler,
		pestHandler,
		treatmentHandler,
		careHandler,
		calendarHandler,
		summaryHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
