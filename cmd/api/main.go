package main

// @title EcoTravel Admin API
// @version 1.0.0
// @description Административный шлюз eco-travel платформы: бронирования, локации, транспорт,
// @description сравнение активностей, оптимизация поездок и генерация маршрутов поверх travel API.

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

	_ "github.com/ecotravel-admin/docs"
	"github.com/ecotravel-admin/internal/config"
	httpDelivery "github.com/ecotravel-admin/internal/delivery/http"
	"github.com/ecotravel-admin/internal/delivery/http/handler"
	"github.com/ecotravel-admin/internal/domain/repository"
	"github.com/ecotravel-admin/internal/infrastructure/backend"
	"github.com/ecotravel-admin/internal/pkg/logger"
	"github.com/ecotravel-admin/internal/repository/cache"
	"github.com/ecotravel-admin/internal/repository/postgres"
	redisRepo "github.com/ecotravel-admin/internal/repository/redis"
	"github.com/ecotravel-admin/internal/usecase"
	"github.com/ecotravel-admin/internal/usecase/page"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.NewWithOptions(cfg.Log.Level, "ecotravel-admin")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting EcoTravel Admin")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("backend_url", cfg.Backend.BaseURL),
	)

	// 3. Connect to Redis. Без Redis админка работает без кеша и событий аудита
	var (
		cacheRepo  repository.CacheRepository
		streamRepo repository.StreamRepository
	)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, list cache and audit events disabled", zap.Error(err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		cacheRepo = cache.NewCacheRepository(redisClient)
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
	}

	// 4. Connect to PostgreSQL, нужен только для чтения журнала
	var auditUC *usecase.AuditUseCase
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Warn("PostgreSQL unavailable, audit log endpoint disabled", zap.Error(err))
	} else {
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		auditUC = usecase.NewAuditUseCase(postgres.NewAuditRepository(db), log)
	}

	// 5. Travel API clients
	client := backend.NewClient(&cfg.Backend, log)
	bookingRepo := backend.NewBookingClient(client)
	locationRepo := backend.NewLocationClient(client)
	transportRepo := backend.NewTransportClient(client)
	plannerRepo := backend.NewPlannerClient(client)

	// 6. Initialize Use Cases
	bookingUC := usecase.NewBookingUseCase(bookingRepo, cacheRepo, streamRepo, log, cfg.Cache.ListCacheTTL)
	locationUC := usecase.NewLocationUseCase(locationRepo, cacheRepo, streamRepo, log, cfg.Cache.ListCacheTTL)
	transportUC := usecase.NewTransportUseCase(
		transportRepo,
		cacheRepo,
		streamRepo,
		log,
		cfg.Cache.ListCacheTTL,
		cfg.Cache.RankingCacheTTL,
	)
	plannerUC := usecase.NewPlannerUseCase(plannerRepo, log)

	log.Info("Use cases initialized")

	// 7. Page controllers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pages := page.NewRegistry(cfg.Pages.StateTTL, log)
	go pages.StartJanitor(ctx, cfg.Pages.SweepInterval)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Booking:   handler.NewBookingHandler(bookingUC, pages, log),
		Location:  handler.NewLocationHandler(locationUC, pages, log),
		Transport: handler.NewTransportHandler(transportUC, pages, log),
		Planner:   handler.NewPlannerHandler(plannerUC, pages, log),
		Admin:     handler.NewAdminHandler(auditUC, pages, log),
	})

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
