package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// dialTestServer upgrades incoming connections, hands the server side to
// serve, and returns a connected client.
func dialTestServer(t *testing.T, serve func(*websocket.Conn)) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		serve(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestWriteTypedDeliversMarkMessage(t *testing.T) {
	mark := MarkEvent{
		LectureID:   7,
		LectureDate: "2025-02-11",
		StudentID:   42,
		IsPresent:   true,
		Actor:       "registrar",
		MarkedAt:    time.Date(2025, 2, 11, 9, 15, 0, 0, time.UTC),
	}
	client := dialTestServer(t, func(conn *websocket.Conn) {
		if err := WriteTyped(conn, MarkMessage{Event: EventMark, Mark: mark}); err != nil {
			t.Errorf("WriteTyped failed: %v", err)
		}
	})

	client.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, raw, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var got MarkMessage
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.Event != EventMark {
		t.Errorf("event = %q, want %q", got.Event, EventMark)
	}
	if got.Mark.StudentID != mark.StudentID || got.Mark.LectureDate != mark.LectureDate {
		t.Errorf("mark = %+v, want %+v", got.Mark, mark)
	}
}

func TestWriteErrorDeliversErrorFrame(t *testing.T) {
	client := dialTestServer(t, func(conn *websocket.Conn) {
		if err := WriteError(conn, "malformed mark event dropped"); err != nil {
			t.Errorf("WriteError failed: %v", err)
		}
	})

	client.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, raw, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var got ErrorMessage
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.Event != EventError {
		t.Errorf("event = %q, want %q", got.Event, EventError)
	}
	if got.Error != "malformed mark event dropped" {
		t.Errorf("error = %q, want %q", got.Error, "malformed mark event dropped")
	}
}
