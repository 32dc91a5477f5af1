package worker

import (
	"errors"
	"testing"

	"github.com/registra-edu/registra-backend/internal/model"
)

func TestNextStatus(t *testing.T) {
	sendErr := errors.New("dial tcp: connection refused")

	tests := []struct {
		name           string
		err            error
		attemptsBefore int
		maxAttempts    int
		want           model.NotificationStatus
	}{
		{"success on first try", nil, 0, 3, model.NotificationSent},
		{"success on last try", nil, 2, 3, model.NotificationSent},
		{"failure with retries left", sendErr, 0, 3, model.NotificationPending},
		{"failure on second attempt", sendErr, 1, 3, model.NotificationPending},
		{"failure exhausts attempts", sendErr, 2, 3, model.NotificationFailed},
		{"single-attempt policy", sendErr, 0, 1, model.NotificationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStatus(tt.err, tt.attemptsBefore, tt.maxAttempts); got != tt.want {
				t.Errorf("NextStatus(err=%v, attempts=%d, max=%d) = %q, want %q",
					tt.err, tt.attemptsBefore, tt.maxAttempts, got, tt.want)
			}
		})
	}
}
