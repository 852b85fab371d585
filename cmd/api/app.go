package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Jawwad-codes/BizTrackr-sub001/docs"
	"github.com/Jawwad-codes/BizTrackr-sub001/internal/adapter/api/controller"
	"github.com/Jawwad-codes/BizTrackr-sub001/internal/adapter/api/route"
	"github.com/Jawwad-codes/BizTrackr-sub001/internal/adapter/repository"
	"github.com/Jawwad-codes/BizTrackr-sub001/internal/domain/chat"
	"github.com/Jawwad-codes/BizTrackr-sub001/internal/infrastructure/database"
	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/auth"
	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/completion"
	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/config"
	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/logger"
	"github.com/Jawwad-codes/BizTrackr-sub001/pkg/routing"
)

// App represents the application and its dependencies
type App struct {
	router            *gin.Engine
	db                *pgxpool.Pool
	cfg               *config.Config
	logger            logger.Logger
	chatbotController *controller.ChatbotController
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	gin.SetMode(cfg.GinMode)

	jwtService, err := auth.NewJWTService(cfg.JWTSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to configure authentication: %w", err)
	}
	resolver := auth.NewJWTResolver(jwtService)

	provider := completion.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, log)
	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY not set, chatbot requests will fail with a configuration error")
	}

	// Chat history is optional: without a database the chatbot still
	// relays messages, it just keeps no history
	var db *pgxpool.Pool
	var historyRepo chat.Repository
	if cfg.DatabaseURL != "" {
		db, err = database.NewPostgresPool(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		historyRepo = repository.NewPostgresChatRepository(db)
	} else {
		log.Warn("DATABASE_URL not set, chat history disabled")
	}

	chatbotController := controller.NewChatbotController(resolver, provider, historyRepo, log)

	policy := routing.ParsePolicy(cfg.AuthPolicy)
	classifier := routing.NewClassifier()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg)))
	router.Use(routing.Middleware(classifier, policy, resolver, log))

	log.Info("Routing filter configured", "policy", policy.String())

	return &App{
		router:            router,
		db:                db,
		cfg:               cfg,
		logger:            log,
		chatbotController: chatbotController,
	}, nil
}

// SetupRoutes configures the application routes
func (a *App) SetupRoutes() {
	a.router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	api := a.router.Group("/api")
	route.SetupChatbotRoutes(api, a.chatbotController)

	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start runs the HTTP server
func (a *App) Start() error {
	return a.router.Run(":" + a.cfg.Port)
}

// Close releases the application resources
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// corsConfig builds the CORS settings from configuration
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.AllowedOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	return corsCfg
}
