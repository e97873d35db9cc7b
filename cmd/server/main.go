package main

import (
	"context"
	"time"

	"github.com/cliphaven/backend/internal/logger"
	"github.com/cliphaven/backend/internal/router"
	"github.com/cliphaven/backend/pkg/config"
	"github.com/cliphaven/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.Env)

	// Initialize database connection
	db, err := config.InitDB(cfg.PostgresConnStr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer config.CloseDB(db)

	// Initialize the object store for avatar uploads
	ctx := context.Background()
	store, err := storage.InitFirebase(ctx, cfg.FirebaseCredentialsPath, cfg.StorageBucket)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Firebase storage")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	if err := router.SetupRoutes(e, db, store, sessionTTL); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up routes")
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
