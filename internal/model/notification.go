package model

import "time"

// NotificationStatus enumerates the delivery states of a queued message.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// Notification is a queued email. The worker drains pending rows with
// attempts below the configured bound, oldest first.
type Notification struct {
	ID        int                `json:"notification_id"`
	ToEmail   string             `json:"to_email"`
	Subject   string             `json:"subject"`
	Message   string             `json:"message"`
	IsHTML    bool               `json:"is_html"`
	Status    NotificationStatus `json:"status"`
	Attempts  int                `json:"attempts"`
	LastError *string            `json:"last_error"`
	SentAt    *time.Time         `json:"sent_at"`
	CreatedAt time.Time          `json:"created_at"`
}
