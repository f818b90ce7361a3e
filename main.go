package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaronlopez/review-board-be/internal/api"
	"github.com/aaronlopez/review-board-be/internal/auth"
	"github.com/aaronlopez/review-board-be/internal/config"
	"github.com/aaronlopez/review-board-be/internal/database"
	"github.com/aaronlopez/review-board-be/internal/logger"
	"github.com/aaronlopez/review-board-be/internal/services"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is a development convenience; production sets the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	logger.Init()

	// Load configuration. A missing JWT secret fails here, before anything
	// gets signed with an empty key.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	// Reseeding drops every table, so it only runs when explicitly requested.
	if cfg.SeedDatabase {
		log.Warn().Msg("SEED_DATABASE is set: dropping and reseeding all tables")
		if err := database.Reset(db); err != nil {
			log.Fatal().Err(err).Msg("Failed to reset database")
		}
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	if cfg.SeedDatabase {
		if err := database.Seed(db); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed database")
		}
		log.Info().Msg("Seed data inserted")
	}

	// Set up services
	userService := services.NewUserService(db)
	itemService := services.NewItemService(db)
	reviewService := services.NewReviewService(db)
	commentService := services.NewCommentService(db)

	tokens := auth.NewTokenService(cfg.JWTSecret)

	// Set up router
	router := api.NewRouter(tokens, userService, itemService, reviewService, commentService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
