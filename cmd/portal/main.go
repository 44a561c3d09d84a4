package main

// @title Venue Booking Portal API
// @version 1.0.0
// @description Портал бронирования площадок Expo City Dubai: каталог территорий и площадок,
// @description заявки организатора, упрощённая проверка доступности и статистика каталога.
// @description
// @description HTML-страницы портала (каталог, мастер бронирования, подтверждение) обслуживаются тем же сервером.

// @contact.name Venue Bookings
// @contact.email bookings@expocitydubai.ae

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

	_ "github.com/venue-booking-portal/docs/swagger"
	"github.com/venue-booking-portal/internal/config"
	httpDelivery "github.com/venue-booking-portal/internal/delivery/http"
	"github.com/venue-booking-portal/internal/delivery/http/handler"
	"github.com/venue-booking-portal/internal/delivery/http/view"
	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/domain/repository"
	"github.com/venue-booking-portal/internal/i18n"
	"github.com/venue-booking-portal/internal/pkg/logger"
	"github.com/venue-booking-portal/internal/pkg/session"
	"github.com/venue-booking-portal/internal/pkg/telemetry"
	"github.com/venue-booking-portal/internal/repository/cache"
	"github.com/venue-booking-portal/internal/repository/memory"
	"github.com/venue-booking-portal/internal/usecase"
	"github.com/venue-booking-portal/internal/worker"
	statsWorker "github.com/venue-booking-portal/internal/worker/stats"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Telemetry.ServiceName)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Venue Booking Portal")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Tracing
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: cfg.Telemetry.ServiceVersion,
		Environment:    cfg.Server.Env,
		CollectorAddr:  cfg.Telemetry.CollectorAddr,
	}); err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	// 4. Cache: Redis when enabled, in-process otherwise
	var (
		cacheRepo   repository.CacheRepository
		redisClient *cache.Redis
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	} else {
		cacheRepo = cache.NewMemoryCacheRepository(log)
		log.Info("Using in-memory cache")
	}

	// 5. Initialize Repositories
	venueRepo := memory.NewVenueRepository()
	bookingRepo := memory.NewBookingRepository()

	log.Info("Repositories initialized")

	// 6. Language state
	initialLang, ok := i18n.ParseLanguage(cfg.I18n.DefaultLanguage)
	if !ok {
		initialLang = domain.DefaultLanguage
	}
	provider := i18n.NewProvider(initialLang, log)
	document := i18n.NewDocument(provider)

	// 7. Initialize Use Cases
	catalogUC := usecase.NewCatalogUseCase(venueRepo, log)
	bookingUC := usecase.NewBookingUseCase(bookingRepo, venueRepo, log)
	wizardUC := usecase.NewWizardUseCase(venueRepo, log)
	statsUC := usecase.NewStatsUseCase(venueRepo, bookingRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)

	log.Info("Use cases initialized")

	// 7b. Background workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	workers := worker.NewManager(log)
	if cfg.Cache.StatsRefreshInterval > 0 {
		workers.Register(statsWorker.NewRefreshWorker(statsUC, cfg.Cache.StatsRefreshInterval, log))
	}
	if workers.Len() > 0 {
		if err := workers.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 8. Initialize HTTP Handlers
	renderer, err := view.NewRenderer(provider, document, log)
	if err != nil {
		log.Fatal("Failed to load templates", zap.Error(err))
	}
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	handlers := httpDelivery.Handlers{
		Page:     handler.NewPageHandler(catalogUC, renderer, log),
		Venue:    handler.NewVenueHandler(catalogUC, renderer, log),
		Auth:     handler.NewAuthHandler(sessions, renderer, log),
		Booking:  handler.NewBookingHandler(bookingUC, renderer, log),
		Wizard:   handler.NewWizardHandler(wizardUC, catalogUC, bookingUC, renderer, log),
		Language: handler.NewLanguageHandler(provider, log),
		API:      handler.NewAPIHandler(catalogUC, bookingUC, provider, log),
		Stats:    handler.NewStatsHandler(statsUC, log),
	}

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, sessions, handlers)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
		zap.String("language", string(provider.Language())),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if workers.Len() > 0 {
		if err := workers.Stop(); err != nil {
			log.Error("Workers shutdown error", zap.Error(err))
		}
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		log.Error("Telemetry shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
