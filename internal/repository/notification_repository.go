package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/registra-edu/registra-backend/internal/model"
)

// NotificationRepository handles the email notification queue.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Enqueue inserts a pending notification.
func (r *NotificationRepository) Enqueue(ctx context.Context, toEmail, subject, message string, isHTML bool) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO notifications (to_email, subject, message, is_html, status, attempts)
		 VALUES ($1, $2, $3, $4, 'pending', 0)`,
		toEmail, subject, message, isHTML)
	return err
}

// NextPending retrieves the oldest pending notification that has attempts
// left, or nil when the queue is drained.
func (r *NotificationRepository) NextPending(ctx context.Context, maxAttempts int) (*model.Notification, error) {
	n := &model.Notification{}
	err := r.pool.QueryRow(ctx,
		`SELECT notification_id, to_email, subject, message, is_html,
		        status, attempts, last_error, sent_at, created_at
		 FROM notifications
		 WHERE status = 'pending' AND attempts < $1
		 ORDER BY notification_id
		 LIMIT 1`, maxAttempts,
	).Scan(&n.ID, &n.ToEmail, &n.Subject, &n.Message, &n.IsHTML,
		&n.Status, &n.Attempts, &n.LastError, &n.SentAt, &n.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// MarkSent records a successful delivery: sent status, attempt counted,
// timestamp stamped, last error cleared.
func (r *NotificationRepository) MarkSent(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notifications
		 SET status = 'sent',
		     attempts = attempts + 1,
		     sent_at = NOW(),
		     last_error = NULL
		 WHERE notification_id = $1`, id)
	return err
}

// MarkFailed records a failed attempt, bumping the attempt counter and
// setting the status the caller computed for the row. The worker decides
// between pending and failed via its retry policy; the repository only
// persists the outcome.
func (r *NotificationRepository) MarkFailed(ctx context.Context, id int, errText string, status model.NotificationStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notifications
		 SET status = $3,
		     attempts = attempts + 1,
		     last_error = $2
		 WHERE notification_id = $1`, id, errText, string(status))
	return err
}
