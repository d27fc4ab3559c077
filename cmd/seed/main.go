package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/sellerhub/backoffice-api/internal/auth"
	"github.com/sellerhub/backoffice-api/internal/config"
	"github.com/sellerhub/backoffice-api/internal/repository/postgres"
	"github.com/sellerhub/backoffice-api/internal/seed"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	db, err := config.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer config.CloseDatabase(db)

	if err := postgres.AutoMigrate(db); err != nil {
		appLogger.Fatal("Failed to migrate database schema", err)
	}

	hashService := auth.NewHashService(cfg.BcryptCost)

	// Roles and the admin account land together or not at all.
	err = db.Transaction(func(tx *gorm.DB) error {
		return seed.Run(context.Background(), postgres.NewRepository(tx), hashService, cfg.AdminDefaultPassword)
	})
	if err != nil {
		appLogger.Fatal("Failed to seed database", err)
	}

	appLogger.Info("Database seeded")
	appLogger.Sync()
}
