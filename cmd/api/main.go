package main

// @title Collection Points API
// @version 1.0.0
// @description Реестр пунктов приёма вторсырья: регистрация пунктов и поиск по штату, городу и категориям материалов.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3333
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/collection-points/docs"
	"github.com/collection-points/internal/config"
	httpDelivery "github.com/collection-points/internal/delivery/http"
	"github.com/collection-points/internal/delivery/http/handler"
	"github.com/collection-points/internal/domain/repository"
	"github.com/collection-points/internal/pkg/logger"
	"github.com/collection-points/internal/pkg/validator"
	"github.com/collection-points/internal/repository/cache"
	"github.com/collection-points/internal/repository/postgres"
	"github.com/collection-points/internal/repository/storage"
	"github.com/collection-points/internal/usecase"
	"github.com/collection-points/internal/usecase/dto"
	"go.uber.org/zap"
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

	log.Info("Starting Collection Points Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("upload_dir", cfg.Storage.UploadDir),
		zap.String("public_url", cfg.Storage.PublicURL),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis. Кеш необязателен: без него чтение идёт из базы.
	var (
		redisClient *cache.Redis
		cacheRepo   repository.CacheRepository
	)
	redisClient, err = cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, point cache disabled",
			zap.String("addr", cfg.GetRedisAddr()),
			zap.Error(err),
		)
	} else {
		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	// 6. Initialize Repositories
	pointRepo := postgres.NewPointRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)

	imageStorage, err := storage.NewLocalStorage(&cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize image storage", zap.Error(err))
	}

	log.Info("Repositories initialized")

	// 7. Load category catalog
	catalog := usecase.NewCategoryCatalog(categoryRepo, log)
	if err := catalog.Load(ctx); err != nil {
		log.Fatal("Failed to load category catalog", zap.Error(err))
	}

	// 8. Initialize Use Cases
	presenter := dto.NewPresenter(cfg.Storage.PublicURL)

	itemUC := usecase.NewItemUseCase(catalog, presenter, log)

	pointUC := usecase.NewPointUseCase(
		pointRepo,
		cacheRepo,
		imageStorage,
		catalog,
		presenter,
		validator.ImagePolicy{
			MaxSize: cfg.Storage.MaxUploadSize,
			Allowed: cfg.Storage.AllowedMIMETypes,
		},
		log,
		cfg.Cache.PointCacheTTL,
	)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	checks := map[string]handler.HealthChecker{"postgres": db}
	if redisClient != nil {
		checks["redis"] = redisClient
	}

	itemHandler := handler.NewItemHandler(itemUC, log)
	pointHandler := handler.NewPointHandler(pointUC, log)
	healthHandler := handler.NewHealthHandler(checks, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		itemHandler,
		pointHandler,
		healthHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
