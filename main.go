package main

import (
	"log"
	"time"

	"trivia/config"
	"trivia/handlers"
	"trivia/middleware"
	"trivia/models"
	"trivia/routes"
	"trivia/services"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env if present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Env == "release" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Categories are seeded out-of-band; this only keeps the schema current.
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	triviaService := services.NewTriviaService(db)

	categoryHandler := handlers.NewCategoryHandler(triviaService, logger)
	questionHandler := handlers.NewQuestionHandler(triviaService, logger)
	quizHandler := handlers.NewQuizHandler(triviaService, logger)

	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(middleware.CORS())

	routes.SetupRoutes(router, categoryHandler, questionHandler, quizHandler)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
