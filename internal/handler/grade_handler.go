package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/registra-edu/registra-backend/internal/model"
	"github.com/registra-edu/registra-backend/internal/repository"
	"github.com/registra-edu/registra-backend/internal/response"
	"github.com/registra-edu/registra-backend/internal/service"
	"github.com/registra-edu/registra-backend/internal/validator"
)

type GradeHandler struct {
	gradeService *service.GradeService
	log          zerolog.Logger
}

func NewGradeHandler(gradeService *service.GradeService, log zerolog.Logger) *GradeHandler {
	return &GradeHandler{
		gradeService: gradeService,
		log:          log.With().Str("component", "grade_handler").Logger(),
	}
}

// GetLectures godoc
// GET /grades/lectures?date=YYYY-MM-DD
func (h *GradeHandler) GetLectures(c *gin.Context) {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	lectures, err := h.gradeService.LecturesOn(c.Request.Context(), date)
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
// GET /grades/roster?lecture_id=&type=&label=
func (h *GradeHandler) GetRoster(c *gin.Context) {
	lectureID := parseIntQuery(c, "lecture_id")
	if lectureID == nil {
		response.FailMessage(c, http.StatusBadRequest, "lecture_id is required")
		return
	}

	var label *string
	if raw := c.Query("label"); raw != "" {
		label = &raw
	}

	roster, err := h.gradeService.Roster(c.Request.Context(), *lectureID, c.Query("type"), label)
	if err != nil {
		if errors.Is(err, repository.ErrLectureNotFound) {
			response.FailMessage(c, http.StatusNotFound, "Lecture not found")
			return
		}
		h.log.Error().Err(err).Int("lecture_id", *lectureID).Msg("Failed to resolve grade roster")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if roster.Students == nil {
		roster.Students = []model.GradeRosterStudent{}
	}
	response.JSON(c, http.StatusOK, roster)
}

// GetHistory godoc
// GET /grades/history?lecture_id=&student_id=&type=&label=
func (h *GradeHandler) GetHistory(c *gin.Context) {
	lectureID := parseIntQuery(c, "lecture_id")
	if lectureID == nil {
		response.FailMessage(c, http.StatusBadRequest, "lecture_id is required")
		return
	}
	studentID := parseIntQuery(c, "student_id")
	if studentID == nil {
		response.FailMessage(c, http.StatusBadRequest, "student_id is required")
		return
	}

	var label *string
	if raw := c.Query("label"); raw != "" {
		label = &raw
	}

	entries, err := h.gradeService.History(c.Request.Context(), *lectureID, *studentID, c.Query("type"), label)
	if err != nil {
		if errors.Is(err, repository.ErrLectureNotFound) {
			response.FailMessage(c, http.StatusNotFound, "Lecture not found")
			return
		}
		h.log.Error().Err(err).Int("lecture_id", *lectureID).Msg("Failed to resolve grade history")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Save godoc
// POST /grades/save
func (h *GradeHandler) Save(c *gin.Context) {
	var req model.SaveGradesRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.FailMessage(c, http.StatusBadRequest, msg)
		return
	}

	applied, err := h.gradeService.Save(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrLectureNotFound) {
			response.FailMessage(c, http.StatusNotFound, "Lecture not found")
			return
		}
		h.log.Error().Err(err).Int("lecture_id", req.LectureID).Msg("Failed to save grade batch")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"ok": true, "count": applied})
}
