package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/studyboi/quizforge/config"
	"github.com/studyboi/quizforge/database"
	"github.com/studyboi/quizforge/internal/controller"
	"github.com/studyboi/quizforge/internal/generation"
	"github.com/studyboi/quizforge/internal/logger"
	"github.com/studyboi/quizforge/internal/model"
	"github.com/studyboi/quizforge/internal/repository"
	"github.com/studyboi/quizforge/internal/service"
	"github.com/studyboi/quizforge/internal/session"
)

// @title QuizForge API
// @version 1.0
// @description AI-assisted quiz generation and scoring service.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewAttemptRepository,
		),

		// Generation pipeline
		fx.Provide(
			generation.NewGeminiClient,
			func() *generation.Normalizer { return generation.NewNormalizer(nil) },
			generation.NewAssembler,
		),

		// Services layer
		fx.Provide(
			service.NewQuizGenerationService,
			service.NewQuizService,
			service.NewAttemptService,
			func(attemptService service.AttemptService) *session.Manager {
				return session.NewManager(attemptService)
			},
			service.NewSessionService,
		),

		// API controllers layer
		fx.Provide(
			controller.NewQuizController,
			controller.NewSessionController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog so everything lands in
	// one structured stream.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the
// HTTP server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *controller.QuizController,
	sessionCtrl *controller.SessionController,
) {
	api := router.Group("/api/v1")
	{
		quizzes := api.Group("/quizzes")
		quizzes.POST("/generate", quizCtrl.GenerateQuiz)
		quizzes.GET("", quizCtrl.ListQuizzes)
		quizzes.GET("/:quiz_id", quizCtrl.GetQuiz)
		quizzes.DELETE("/:quiz_id", quizCtrl.DeleteQuiz)
		quizzes.POST("/:quiz_id/questions", quizCtrl.AddQuestion)

		quizzes.POST("/:quiz_id/session", sessionCtrl.OpenSession)
		quizzes.PUT("/:quiz_id/session/answer", sessionCtrl.SelectAnswer)
		quizzes.PUT("/:quiz_id/session/position", sessionCtrl.Move)
		quizzes.POST("/:quiz_id/session/submit", sessionCtrl.Submit)
		quizzes.POST("/:quiz_id/session/retry", sessionCtrl.Retry)

		api.GET("/my-attempts", sessionCtrl.ListMyAttempts)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizForge API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizAttempt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
