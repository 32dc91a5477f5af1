package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/registra-edu/registra-backend/internal/response"
)

// parseID reads a positive integer path parameter or replies 400.
func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// parseDateQuery reads a required YYYY-MM-DD query parameter or replies 400.
func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrDateRequired)
		return time.Time{}, false
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrDateRequired)
		return time.Time{}, false
	}
	return date, true
}

// parseIntQuery reads an optional integer query parameter. A malformed
// value is treated as absent.
func parseIntQuery(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// isForeignKeyViolation reports whether err is a Postgres foreign key
// constraint violation, the signal that a delete target is still
// referenced by dependent records.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
