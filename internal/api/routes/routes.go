package routes

import (
	"time"

	"voice-assistant-backend/internal/api/handlers"
	"voice-assistant-backend/internal/api/middleware"
	"voice-assistant-backend/internal/cache"
	"voice-assistant-backend/internal/config"
	"voice-assistant-backend/internal/repository"
	"voice-assistant-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	phoneMappingRepo := repository.NewPhoneMappingRepository(db)
	callRecordRepo := repository.NewCallRecordRepository(db)

	// Initialize the query cache shared by knowledge lookups
	queryCache := cache.New(
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
		cfg.CacheMaxEntries,
	)

	// Initialize services
	twilioService := service.NewTwilioService(cfg)
	vapiService := service.NewVapiService(cfg)
	embeddingService := service.NewEmbeddingService(cfg)
	searchService := service.NewSearchService(cfg)
	phoneAssignmentService := service.NewPhoneAssignmentService(twilioService, vapiService, phoneMappingRepo)
	callRoutingService := service.NewCallRoutingService(phoneMappingRepo)
	restaurantService := service.NewRestaurantService(restaurantRepo, phoneMappingRepo, phoneAssignmentService, validator)
	knowledgeService := service.NewKnowledgeService(queryCache, embeddingService, searchService, cfg)
	callHistoryService := service.NewCallHistoryService(callRecordRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)
	vapiHandler := handlers.NewVapiHandler(callRoutingService, knowledgeService)
	callHandler := handlers.NewCallHandler(callHistoryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rate limiting covers the API and webhook groups; health and swagger
	// stay outside it
	var limited []gin.HandlerFunc
	if cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		limited = append(limited, middleware.RateLimit(limiter, cfg))
	}

	// Restaurant and call-history routes. Provisioning and call recording
	// are driven by the same trusted backend integrations as the webhooks,
	// so mutations share the webhook secret; reads stay open.
	api := router.Group("/api/v1", limited...)
	{
		api.POST("/restaurants", middleware.WebhookAuth(cfg), restaurantHandler.CreateRestaurant)
		api.GET("/restaurants/:id", restaurantHandler.GetRestaurant)
		api.GET("/calls", callHandler.ListCalls)
		api.POST("/calls", middleware.WebhookAuth(cfg), callHandler.CreateCall)
	}

	// Vapi webhook routes
	vapi := router.Group("/vapi", limited...)
	vapi.Use(middleware.WebhookAuth(cfg))
	{
		vapi.POST("/assistant-request", vapiHandler.AssistantRequest)
		vapi.POST("/knowledge-base", vapiHandler.KnowledgeBase)
		vapi.POST("/cache/invalidate", vapiHandler.InvalidateCache)
		vapi.POST("/embeddings/generate", vapiHandler.GenerateEmbeddings)
	}

	return router
}
