package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/registra-edu/registra-backend/internal/config"
	"github.com/registra-edu/registra-backend/internal/database"
	"github.com/registra-edu/registra-backend/internal/logger"
	"github.com/registra-edu/registra-backend/internal/mailer"
	"github.com/registra-edu/registra-backend/internal/repository"
	"github.com/registra-edu/registra-backend/internal/worker"
)

// Standalone notification worker. Use this instead of the in-process
// worker when the API servers are scaled out: exactly one notifier
// should drain the queue.
func main() {
	cfg := config.Load()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Dur("poll_interval", cfg.NotifyPollInterval).
		Int("max_attempts", cfg.NotifyMaxAttempts).
		Msg("Starting Registra Notifier")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	notifRepo := repository.NewNotificationRepository(pool)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	notifyWorker := worker.NewNotifyWorker(notifRepo, smtpMailer, cfg.NotifyPollInterval, cfg.NotifyMaxAttempts, log)

	go notifyWorker.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down...")
	cancel()
	time.Sleep(time.Second) // Let an in-flight delivery finish.
	log.Info().Msg("Shutdown complete")
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
