package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/registra-edu/registra-backend/internal/model"
	"github.com/registra-edu/registra-backend/internal/repository"
	"github.com/registra-edu/registra-backend/internal/response"
	"github.com/registra-edu/registra-backend/internal/service"
	"github.com/registra-edu/registra-backend/internal/validator"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	log               zerolog.Logger
}

func NewAttendanceHandler(attendanceService *service.AttendanceService, log zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		log:               log.With().Str("component", "attendance_handler").Logger(),
	}
}

// GetLectures godoc
// GET /attendance/lectures?date=YYYY-MM-DD
func (h *AttendanceHandler) GetLectures(c *gin.Context) {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	lectures, err := h.attendanceService.LecturesOn(c.Request.Context(), date)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list lectures for date")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if lectures == nil {
		lectures = []model.LectureOccurrence{}
	}
	response.JSON(c, http.StatusOK, lectures)
}

// GetRoster godoc
// GET /attendance/roster?lecture_id=&date=YYYY-MM-DD
func (h *AttendanceHandler) GetRoster(c *gin.Context) {
	lectureID := parseIntQuery(c, "lecture_id")
	if lectureID == nil {
		response.FailMessage(c, http.StatusBadRequest, "lecture_id is required")
		return
	}
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	roster, err := h.attendanceService.Roster(c.Request.Context(), *lectureID, date)
	if err != nil {
		if errors.Is(err, repository.ErrLectureNotFound) {
			response.FailMessage(c, http.StatusNotFound, "Lecture not found")
			return
		}
		h.log.Error().Err(err).Int("lecture_id", *lectureID).Msg("Failed to resolve roster")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if roster.Students == nil {
		roster.Students = []model.RosterStudent{}
	}
	response.JSON(c, http.StatusOK, roster)
}

// Mark godoc
// POST /attendance/mark
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req model.MarkAttendanceRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.FailMessage(c, http.StatusBadRequest, msg)
		return
	}

	date, err := time.Parse(time.DateOnly, req.LectureDate)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrDateRequired)
		return
	}

	applied, err := h.attendanceService.Mark(c.Request.Context(), &req, date)
	if err != nil {
		var rowErr *service.RowError
		switch {
		case errors.As(err, &rowErr):
			response.FailMessage(c, http.StatusBadRequest, rowErr.Error())
		case errors.Is(err, repository.ErrLectureNotFound):
			response.FailMessage(c, http.StatusNotFound, "Lecture not found")
		default:
			h.log.Error().Err(err).Int("lecture_id", req.LectureID).Msg("Failed to apply attendance batch")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"ok": true, "count": applied})
}
