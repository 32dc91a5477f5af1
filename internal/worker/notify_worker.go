package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/registra-edu/registra-backend/internal/mailer"
	"github.com/registra-edu/registra-backend/internal/model"
	"github.com/registra-edu/registra-backend/internal/repository"
)

// NotifyWorker drains the notification queue: it polls for the oldest
// pending row with attempts left, delivers it, and records the outcome.
// A delivery failure keeps the row pending until the attempt bound is
// reached, then the row flips to failed and is never retried.
type NotifyWorker struct {
	repo        *repository.NotificationRepository
	mailer      mailer.Mailer
	interval    time.Duration
	maxAttempts int
	log         zerolog.Logger
}

// NewNotifyWorker creates a new NotifyWorker.
func NewNotifyWorker(repo *repository.NotificationRepository, m mailer.Mailer, interval time.Duration, maxAttempts int, log zerolog.Logger) *NotifyWorker {
	return &NotifyWorker{
		repo:        repo,
		mailer:      m,
		interval:    interval,
		maxAttempts: maxAttempts,
		log:         log.With().Str("component", "notify_worker").Logger(),
	}
}

// Start runs the polling loop until ctx is cancelled. Each tick drains
// the queue completely before going back to sleep.
func (w *NotifyWorker) Start(ctx context.Context) {
	w.log.Info().
		Dur("interval", w.interval).
		Int("max_attempts", w.maxAttempts).
		Msg("Notification worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Notification worker stopped")
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

func (w *NotifyWorker) drain(ctx context.Context) {
	for {
		n, err := w.repo.NextPending(ctx, w.maxAttempts)
		if err != nil {
			w.log.Error().Err(err).Msg("Failed to fetch pending notification")
			return
		}
		if n == nil {
			return
		}
		w.deliver(ctx, n)
	}
}

func (w *NotifyWorker) deliver(ctx context.Context, n *model.Notification) {
	err := w.mailer.Send(n.ToEmail, n.Subject, n.Message, n.IsHTML)
	if err != nil {
		status := NextStatus(err, n.Attempts, w.maxAttempts)
		w.log.Warn().Err(err).
			Int("notification_id", n.ID).
			Int("attempt", n.Attempts+1).
			Str("status", string(status)).
			Msg("Notification delivery failed")
		if dbErr := w.repo.MarkFailed(ctx, n.ID, err.Error(), status); dbErr != nil {
			w.log.Error().Err(dbErr).Int("notification_id", n.ID).Msg("Failed to record delivery failure")
		}
		return
	}

	if dbErr := w.repo.MarkSent(ctx, n.ID); dbErr != nil {
		w.log.Error().Err(dbErr).Int("notification_id", n.ID).Msg("Failed to record delivery success")
		return
	}
	w.log.Info().
		Int("notification_id", n.ID).
		Str("to", n.ToEmail).
		Msg("Notification sent")
}

// NextStatus computes the queue state a row lands in after one delivery
// attempt. deliver uses it to decide whether a failed row stays pending
// or flips to failed before handing the outcome to the repository.
func NextStatus(sendErr error, attemptsBefore, maxAttempts int) model.NotificationStatus {
	if sendErr == nil {
		return model.NotificationSent
	}
	if attemptsBefore+1 >= maxAttempts {
		return model.NotificationFailed
	}
	return model.NotificationPending
}
