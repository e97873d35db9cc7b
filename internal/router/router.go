package router

import (
	"time"

	"github.com/cliphaven/backend/internal/auth"
	"github.com/cliphaven/backend/internal/handlers"
	"github.com/cliphaven/backend/internal/middleware"
	"github.com/cliphaven/backend/internal/models"
	"github.com/cliphaven/backend/internal/repositories"
	"github.com/cliphaven/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Info().Msg("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, store storage.ObjectStore, sessionTTL time.Duration) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Follow{},
		&models.Clip{},
		&models.Comment{},
	)
	if err != nil {
		return err
	}
	log.Info().Msg("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	sessionRepo := repositories.NewPostgresSessionRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	clipRepo := repositories.NewPostgresClipRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)

	sessions := auth.NewSessions(sessionRepo, sessionTTL)

	// Every request gets an anti-forgery token and a resolved identity
	e.Use(middleware.EnsureCSRF())
	e.Use(middleware.SessionAuth(sessions))

	// --- Authentication and profile routes on the root ---
	authHandler := handlers.NewAuthHandler(userRepo, followRepo, sessions, store)
	authHandler.RegisterAuthRoutes(e)
	log.Info().Msg("Auth routes configured.")

	// --- Social API group; mutations must echo the anti-forgery token ---
	api := e.Group("/api")
	api.Use(middleware.AntiForgery())

	profileHandler := handlers.NewProfileHandler(userRepo, followRepo, store)
	profileHandler.RegisterProfileRoutes(e, api)
	log.Info().Msg("Profile routes configured.")

	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(api)
	log.Info().Msg("Follow routes configured.")

	clipHandler := handlers.NewClipHandler(clipRepo)
	clipHandler.RegisterClipRoutes(api)
	log.Info().Msg("Clip routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, clipRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Info().Msg("Comment routes configured.")

	log.Info().Msg("All routes configured.")
	return nil
}
