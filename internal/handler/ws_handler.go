package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	ws "github.com/registra-edu/registra-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allow list permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams committed attendance marks to admin dashboards.
type WSHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// AttendanceStream godoc
// WS /ws/attendance/stream?date=YYYY-MM-DD
// Upgrades to WebSocket and relays mark events published on Redis. An
// optional date query narrows the stream to one lecture date.
func (h *WSHandler) AttendanceStream(c *gin.Context) {
	var dateFilter string
	if raw := c.Query("date"); raw != "" {
		if _, err := time.Parse(time.DateOnly, raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "date must be YYYY-MM-DD"})
			return
		}
		dateFilter = raw
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	sub := h.rdb.Subscribe(ctx, ws.MarkChannel)
	defer sub.Close()

	// Drain client frames so pings and close frames are processed; the
	// stream itself is one-directional.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				sub.Close()
				return
			}
		}
	}()

	for msg := range sub.Channel() {
		var ev ws.MarkEvent
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			h.log.Warn().Err(err).Msg("Dropped malformed mark event")
			if err := ws.WriteError(conn, "malformed mark event dropped"); err != nil {
				return
			}
			continue
		}
		if dateFilter != "" && ev.LectureDate != dateFilter {
			continue
		}
		if err := ws.WriteTyped(conn, ws.MarkMessage{Event: ws.EventMark, Mark: ev}); err != nil {
			return
		}
	}
}
