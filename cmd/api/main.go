package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/persistence"
	receiptUseCase "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/usecase/receipt"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/storage"
	timeProvider "github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	defer appLogger.Flush()

	for _, warning := range cfg.Warnings() {
		appLogger.Warn("Questionable production configuration", map[string]any{
			"warning": warning,
		})
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer dbManager.Close()

	if cfg.Database.AutoMigrate {
		if err := dbManager.MigrationManager().MigrateAll(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	fileStorage, err := storage.New(ctx, cfg.Storage, appLogger)
	if err != nil {
		return fmt.Errorf("create file storage: %w", err)
	}

	receiptCache, closeCache := newReceiptCache(ctx, cfg.Cache, appLogger)
	defer closeCache()

	receiptUseCaseImpl := receiptUseCase.NewReceiptUseCase(
		dbManager.CreateUnitOfWork(),
		receiptCache,
		fileStorage,
		tp,
		appLogger,
	)

	receiptHandler := handler.NewReceiptHandler(receiptUseCaseImpl, cfg.Server.MaxUploadSize, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, appLogger)

	uploadsDir := ""
	if local, ok := fileStorage.(*storage.LocalStorage); ok {
		uploadsDir = local.Root()
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, receiptHandler, healthHandler, uploadsDir)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"database": cfg.Database.Driver,
			"storage":  cfg.Storage.Type,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// newReceiptCache returns the Redis cache when enabled and reachable, otherwise a no-op cache
func newReceiptCache(ctx context.Context, cfg config.CacheConfig, appLogger coreport.Logger) (persistence.ReceiptCache, func()) {
	if !cfg.Enabled {
		return cache.NewNoopReceiptCache(), func() {}
	}

	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		appLogger.Warn("Redis unavailable, receipt list caching disabled", map[string]any{
			"addr":  cfg.Addr,
			"error": err.Error(),
		})
		return cache.NewNoopReceiptCache(), func() {}
	}

	appLogger.Info("Receipt list cache enabled", map[string]any{
		"addr": cfg.Addr,
		"ttl":  cfg.TTL.String(),
	})

	return cache.NewRedisReceiptCache(client, cfg.Prefix, cfg.TTL, appLogger), func() { closeRedis(client, appLogger) }
}

func closeRedis(client *redis.Client, appLogger coreport.Logger) {
	if err := client.Close(); err != nil {
		appLogger.Warn("Failed to close redis client", map[string]any{
			"error": err.Error(),
		})
	}
}
