package main

import (
	"context"
	"log"

	"glowtype/config"
	"glowtype/handlers"
	"glowtype/middleware"
	"glowtype/routes"
	"glowtype/services"
	"glowtype/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	// Load published configuration data; any defect here is fatal at startup
	// rather than a per-request surprise.
	quizDef, err := storage.LoadQuizDefinition()
	if err != nil {
		logger.Fatal("load quiz definition", zap.Error(err))
	}
	glowtypes, err := storage.LoadGlowtypes()
	if err != nil {
		logger.Fatal("load glowtype catalog", zap.Error(err))
	}
	crisisRules, err := storage.LoadCrisisRules()
	if err != nil {
		logger.Fatal("load crisis rules", zap.Error(err))
	}
	helpDir, err := storage.LoadHelpDirectory()
	if err != nil {
		logger.Fatal("load help directory", zap.Error(err))
	}

	redisClient := config.InitRedis(cfg)
	stateStore := storage.NewRedisStateStore(redisClient)

	gateway, err := newGateway(cfg)
	if err != nil {
		logger.Fatal("initialize reply gateway", zap.Error(err))
	}

	// Services
	quizService := services.NewQuizService(quizDef)
	scoringService := services.NewScoringService(quizDef, glowtypes, logger)
	attemptService := services.NewAttemptService(quizDef, scoringService, stateStore, cfg.AttemptTTL, logger)
	glowtypeService := services.NewGlowtypeService(glowtypes)
	crisisService := services.NewCrisisService(crisisRules)
	chatService := services.NewChatService(gateway, crisisService, stateStore, cfg.SessionTTL, cfg.GatewayTimeout, logger)
	helpService := services.NewHelpService(helpDir)

	// Handlers
	quizHandler := handlers.NewQuizHandler(quizService, scoringService, attemptService)
	glowtypeHandler := handlers.NewGlowtypeHandler(glowtypeService)
	chatHandler := handlers.NewChatHandler(chatService)
	helpHandler := handlers.NewHelpHandler(helpService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.PrivacyLogger(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigin))

	routes.SetupRoutes(router, quizHandler, glowtypeHandler, chatHandler, helpHandler, chatService, logger)

	addr := cfg.BindAddress + ":" + cfg.Port
	logger.Info("server starting", zap.String("addr", addr), zap.String("chat_provider", cfg.ChatProvider))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newGateway(cfg *config.Config) (services.ReplyGateway, error) {
	if cfg.ChatProvider == "gemini" {
		return services.NewGeminiGateway(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	return services.NewMockGateway(), nil
}
