package websocket

import "time"

// MarkChannel is the Redis pub/sub channel carrying attendance mark events.
const MarkChannel = "attendance:marks"

// MarkEvent is published after every committed attendance batch row and
// streamed to connected admin dashboards.
type MarkEvent struct {
	LectureID   int       `json:"lecture_id"`
	LectureDate string    `json:"lecture_date"`
	StudentID   int       `json:"student_id"`
	IsPresent   bool      `json:"is_present"`
	Actor       string    `json:"actor"`
	MarkedAt    time.Time `json:"marked_at"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventMark  Event = "mark"
	EventError Event = "error"
)

// MarkMessage wraps a MarkEvent for the wire.
type MarkMessage struct {
	Event Event     `json:"event"`
	Mark  MarkEvent `json:"mark"`
}

// ErrorMessage reports a stream-level problem to the client.
type ErrorMessage struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}
