package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sellerhub/backoffice-api/internal/config"
	"github.com/sellerhub/backoffice-api/internal/repository/postgres"
	"github.com/sellerhub/backoffice-api/internal/service"
	"github.com/sellerhub/backoffice-api/internal/service/pubsub"
	"github.com/sellerhub/backoffice-api/internal/service/queue"
	"github.com/sellerhub/backoffice-api/internal/worker"
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

	repo := postgres.NewRepository(db)

	// Initialize Redis for publishing applied sales
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	saleService := service.NewSaleService(repo, appLogger)
	saleService.SetPublisher(pubsub.NewRedisPubSub(redisClient, appLogger))

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	webhookWorker := worker.NewWebhookWorker(
		sqsService,
		saleService,
		appLogger,
		3,             // worker goroutines
		5*time.Second, // poll interval
	)

	webhookWorker.Start()
	appLogger.Info("Webhook worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	webhookWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
