package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isdelr/vocab-trainer/internal/api"
	"github.com/isdelr/vocab-trainer/internal/auth"
	"github.com/isdelr/vocab-trainer/internal/config"
	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/isdelr/vocab-trainer/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	// Set up services
	userService := services.NewUserService(db, cfg.BcryptCost)
	wordService := services.NewWordService(db)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(questionService, nil)
	eventService := services.NewEventService(db)

	created, err := userService.BootstrapAdmin(ctx, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	if created {
		level := "info"
		if cfg.AdminPassword == config.DefaultAdminPassword {
			level = "warn"
			log.Warn().Msg("Bootstrap admin uses the default password; set ADMIN_DEFAULT_PASSWORD or change it")
		}
		if err := eventService.CreateEvent(ctx, models.EventAdminBootstrap, level, "Created bootstrap admin account", ""); err != nil {
			log.Error().Err(err).Msg("Failed to record bootstrap event")
		}
	}

	tokens := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL, cfg.Production)

	router := api.NewRouter(api.Deps{
		DB:             db,
		Tokens:         tokens,
		Users:          userService,
		Words:          wordService,
		Questions:      questionService,
		Quiz:           quizService,
		Events:         eventService,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.ServerPort).Str("driver", cfg.DatabaseDriver).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("Server exiting")
	return nil
}
