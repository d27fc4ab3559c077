package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/config"
	"github.com/sellerhub/backoffice-api/internal/middleware"
	"github.com/sellerhub/backoffice-api/internal/service"
	"github.com/sellerhub/backoffice-api/internal/service/pubsub"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

const maxRequestBodySize = 1 * 1024 * 1024 // 1MB

type Server struct {
	auth        *AuthHandler
	user        *UserHandler
	product     *ProductHandler
	webhook     *WebhookHandler
	integration *IntegrationHandler
	sale        *SaleHandler
	websocket   *WebSocketHandler
	authMW      *middleware.AuthMiddleware
	rateLimit   *middleware.RateLimitMiddleware
	cfg         *config.Config
}

func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	userService *service.UserService,
	productService *service.ProductService,
	webhookService *service.WebhookService,
	integrationService *service.IntegrationService,
	saleService *service.SaleService,
	authMW *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	base := NewBaseHandler(logger)
	return &Server{
		auth:        NewAuthHandler(authService, base),
		user:        NewUserHandler(userService, base),
		product:     NewProductHandler(productService, base),
		webhook:     NewWebhookHandler(webhookService, base),
		integration: NewIntegrationHandler(integrationService, base),
		sale:        NewSaleHandler(saleService, base),
		websocket:   NewWebSocketHandler(logger, pubsub),
		authMW:      authMW,
		rateLimit:   rateLimit,
		cfg:         cfg,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(middleware.ValidateRequestSize(maxRequestBodySize))
	api.Use(middleware.ValidateContentType("application/json"))
	api.Use(s.rateLimit.GlobalRateLimit(s.cfg.GlobalRateLimit))

	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.auth.Register)
			auth.POST("/login", s.auth.Login)
			auth.POST("/refresh", s.auth.Refresh)
			auth.GET("/me", s.authMW.JWTAuth(), s.auth.Me)
		}

		products := api.Group("/products", s.authMW.JWTAuth(), s.rateLimit.UserRateLimit(s.cfg.UserRateLimit))
		{
			products.POST("", s.product.CreateProduct)
			products.GET("", s.product.ListProducts)
			products.GET("/:id", s.product.GetProduct)
			products.PUT("/:id", s.product.UpdateProduct)
			products.DELETE("/:id", s.product.DeleteProduct)
		}

		users := api.Group("/users", s.authMW.JWTAuth(), s.rateLimit.UserRateLimit(s.cfg.UserRateLimit), s.authMW.RequireAdmin())
		{
			users.POST("", s.user.CreateUser)
			users.GET("", s.user.ListUsers)
			users.GET("/:id", s.user.GetUser)
			users.PUT("/:id", s.user.UpdateUser)
			users.DELETE("/:id", s.user.DeleteUser)
		}

		// Providers sign their deliveries, so no bearer token here.
		api.POST("/webhook", s.webhook.Receive)

		integrations := api.Group("/integrations")
		{
			integrations.GET("/:provider/initiate", s.authMW.JWTAuth(), s.integration.Initiate)
			// The provider redirect carries no bearer token; identity comes from the state.
			integrations.GET("/:provider/callback", s.integration.Callback)
			integrations.GET("/:provider", s.authMW.JWTAuth(), s.integration.GetIntegration)
			integrations.DELETE("/:provider", s.authMW.JWTAuth(), s.integration.DeleteIntegration)
		}

		api.GET("/facebook/ad-accounts", s.authMW.JWTAuth(), s.rateLimit.UserRateLimit(s.cfg.UserRateLimit), s.integration.FacebookAdAccounts)

		sales := api.Group("/sales", s.authMW.JWTAuth(), s.authMW.RequireAdmin())
		{
			sales.GET("", s.sale.ListSales)
			sales.GET("/stream", s.websocket.StreamSales)
		}
	}
}

// SetupNoRoute installs the catch-all 404 handler on the engine. Unknown
// routes are answered in the error envelope without being logged.
func (s *Server) SetupNoRoute(engine *gin.Engine) {
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(http.StatusNotFound, dto.ServiceFromPath(c.Request.URL.Path), "route not found"))
	})
}

// StartWebSocketHub starts the hub that fans sale updates out to clients.
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
