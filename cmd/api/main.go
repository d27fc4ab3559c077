package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sellerhub/backoffice-api/docs"
	"github.com/sellerhub/backoffice-api/internal/api"
	"github.com/sellerhub/backoffice-api/internal/auth"
	"github.com/sellerhub/backoffice-api/internal/config"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/middleware"
	"github.com/sellerhub/backoffice-api/internal/repository/postgres"
	"github.com/sellerhub/backoffice-api/internal/service"
	"github.com/sellerhub/backoffice-api/internal/service/adplatform"
	"github.com/sellerhub/backoffice-api/internal/service/pubsub"
	"github.com/sellerhub/backoffice-api/internal/service/queue"
	"github.com/sellerhub/backoffice-api/internal/service/storage"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

// @title           Seller Back-Office API
// @version         1.0
// @description     Back-office API for digital product sellers.

// @host      localhost:3000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to S3", err)
	}
	archiver := storage.NewPayloadArchiver(s3Client, s3Config)

	repo := postgres.NewRepository(db)

	hashService := auth.NewHashService(cfg.BcryptCost)
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.JWTExpiresIn, cfg.JWTRefreshExpiresIn)

	// Initialize services
	authService := service.NewAuthService(repo, hashService, tokenService, appLogger)
	userService := service.NewUserService(repo, hashService)
	productService := service.NewProductService(repo)

	webhookService := service.NewWebhookService(
		map[domain.WebhookSource]service.WebhookStrategy{
			domain.WebhookSourceKiwify:  service.NewKiwifyStrategy(cfg.KiwifyWebhookSecret),
			domain.WebhookSourceHotmart: service.NewHotmartStrategy(cfg.HotmartWebhookSecret),
		},
		service.NewRedisDeduper(redisClient),
		sqsService,
		archiver,
		appLogger,
	)

	integrationService := service.NewIntegrationService(
		repo,
		redisClient,
		adplatform.NewFacebookClient(cfg.Facebook),
		adplatform.NewGoogleClient(cfg.Google),
		cfg.Facebook,
		cfg.Google,
		appLogger,
	)

	saleService := service.NewSaleService(repo, appLogger)
	saleService.SetPublisher(redisPubSub)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, appLogger)

	server := api.NewServer(
		cfg,
		authService,
		userService,
		productService,
		webhookService,
		integrationService,
		saleService,
		authMiddleware,
		rateLimitMiddleware,
		appLogger,
		redisPubSub,
	)

	server.StartWebSocketHub()

	// Initialize router
	router := gin.Default()

	docs.SwaggerInfo.Title = "Seller Back-Office API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Schemes = []string{"http"}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	server.SetupRoutes(apiGroup)
	server.SetupNoRoute(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	server.StopWebSocketHub()

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
