package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/config"
)

func main() {
	dbPath := flag.String("db", "", "sqlite database file (overrides configuration)")
	timeout := flag.Duration("timeout", time.Minute, "maximum time for the migration")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
	})
	defer appLogger.Flush()

	dbConfig := database.FromAppConfig(cfg)
	if *dbPath != "" {
		dbConfig = dbConfig.WithPath(*dbPath)
	}
	dbConfig.MonitorInterval = 0

	dbManager := database.NewManager(dbConfig, appLogger, timeProvider.NewRealTimeProvider())
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	defer dbManager.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	migrations := dbManager.MigrationManager()
	if err := migrations.MigrateAll(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}

	version, err := migrations.GetCurrentVersion(ctx)
	if err != nil {
		appLogger.Warn("Could not read schema version", map[string]any{"error": err.Error()})
		return
	}

	appLogger.Info("Database tables are up to date", map[string]any{
		"database": dbConfig.Target(),
		"version":  version,
	})
}
