package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/config"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "", "email address of the new user")
	password := flag.String("password", "", "password of the new user")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: adduser -email <email> -password <password>")
		os.Exit(2)
	}

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

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := database.FromAppConfig(cfg)
	dbConfig.MonitorInterval = 0

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbManager.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := dbManager.MigrationManager().MigrateAll(ctx); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	userUseCase := user.NewUserUseCase(
		dbManager.CreateUnitOfWork(),
		security.NewBcryptHasher(*cost),
		tp,
		appLogger,
	)

	created, err := userUseCase.RegisterUser(ctx, *email, *password)
	if err != nil {
		_ = appLogger.Flush()
		fmt.Fprintf(os.Stderr, "could not add user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("created user %d <%s>\n", created.ID, created.Email)
}
