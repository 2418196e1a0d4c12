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

	"github.com/codersden/backend/config"
	"github.com/codersden/backend/database"
	_ "github.com/codersden/backend/docs"
	"github.com/codersden/backend/internal/controller"
	"github.com/codersden/backend/internal/logger"
	"github.com/codersden/backend/internal/model"
	"github.com/codersden/backend/internal/quiz"
	"github.com/codersden/backend/internal/repository"
	"github.com/codersden/backend/internal/service"
	"github.com/codersden/backend/internal/sheets"
)

// @title Coders Den API
// @version 1.0
// @description Community platform API: skills assessments, lead capture forms, and site content.
// @contact.name Coders Den
// @contact.url https://codersden.dev
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			NewQuestionBanks,
			quiz.NewAssembler,
			sheets.NewRecorder,
		),

		fx.Provide(
			repository.NewRegistrationRepository,
			repository.NewContactMessageRepository,
			repository.NewNewsletterRepository,
			repository.NewQuizResultRepository,
		),

		fx.Provide(
			service.NewSubmissionService,
			service.NewSessionService,
		),

		fx.Provide(
			controller.NewQuizController,
			controller.NewSubmissionController,
			controller.NewContentController,
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

// NewQuestionBanks loads and validates the built-in question banks.
func NewQuestionBanks() (quiz.BankSet, error) {
	banks := quiz.DefaultBanks()
	if err := banks.Validate(); err != nil {
		return nil, err
	}
	return banks, nil
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *controller.QuizController,
	submissionCtrl *controller.SubmissionController,
	contentCtrl *controller.ContentController,
	sessions service.SessionService,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/registration", submissionCtrl.SubmitRegistration)
		api.POST("/contact", submissionCtrl.SubmitContact)
		api.POST("/newsletter", submissionCtrl.SubmitNewsletter)
		api.POST("/quiz-results", submissionCtrl.SubmitQuizResults)

		quizGroup := api.Group("/quiz")
		{
			quizGroup.GET("/tracks", quizCtrl.GetTracks)
			quizGroup.POST("/tracks/:track/sessions", quizCtrl.StartSession)
			quizGroup.GET("/sessions/:session_id", quizCtrl.GetSession)
			quizGroup.POST("/sessions/:session_id/answers", quizCtrl.AnswerQuestion)
			quizGroup.POST("/sessions/:session_id/next", quizCtrl.NextQuestion)
			quizGroup.POST("/sessions/:session_id/previous", quizCtrl.PreviousQuestion)
			quizGroup.POST("/sessions/:session_id/submit", quizCtrl.SubmitSession)
			quizGroup.GET("/sessions/:session_id/result", quizCtrl.GetResult)
		}

		api.GET("/events", contentCtrl.GetEvents)
		api.GET("/blog", contentCtrl.GetPosts)
		api.GET("/blog/:slug", contentCtrl.GetPost)
		api.GET("/members", contentCtrl.GetMembers)
		api.GET("/testimonials", contentCtrl.GetTestimonials)
		api.GET("/stats", contentCtrl.GetStats)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Coders Den API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			if err := sessions.Stop(ctx); err != nil {
				log.Error().Err(err).Msg("Failed to stop session service")
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Registration{},
		&model.ContactMessage{},
		&model.NewsletterSignup{},
		&model.QuizResult{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
