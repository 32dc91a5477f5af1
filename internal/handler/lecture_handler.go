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

type LectureHandler struct {
	lectureService *service.LectureService
	log            zerolog.Logger
}

func NewLectureHandler(lectureService *service.LectureService, log zerolog.Logger) *LectureHandler {
	return &LectureHandler{
		lectureService: lectureService,
		log:            log.With().Str("component", "lecture_handler").Logger(),
	}
}

// GetByOffering godoc
// GET /lectures?offering_id=
func (h *LectureHandler) GetByOffering(c *gin.Context) {
	offeringID := parseIntQuery(c, "offering_id")
	if offeringID == nil {
		response.FailMessage(c, http.StatusBadRequest, "offering_id is required")
		return
	}

	lectures, err := h.lectureService.ListByOffering(c.Request.Context(), *offeringID)
	if err != nil {
		h.log.Error().Err(err).Int("offering_id", *offeringID).Msg("Failed to list lectures")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if lectures == nil {
		lectures = []model.Lecture{}
	}
	response.JSON(c, http.StatusOK, lectures)
}

// GetPicklists godoc
// GET /lectures/picklists?semester_id=&course_id=
func (h *LectureHandler) GetPicklists(c *gin.Context) {
	picklists, err := h.lectureService.Picklists(c.Request.Context(),
		parseIntQuery(c, "semester_id"), parseIntQuery(c, "course_id"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load lecture picklists")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, picklists)
}

// Create godoc
// POST /lectures
func (h *LectureHandler) Create(c *gin.Context) {
	var req model.CreateLectureRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.FailMessage(c, http.StatusBadRequest, msg)
		return
	}

	id, err := h.lectureService.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDayCode):
			response.FailMessage(c, http.StatusBadRequest, err.Error())
		case isForeignKeyViolation(err):
			response.FailMessage(c, http.StatusBadRequest, "Offering does not exist")
		default:
			h.log.Error().Err(err).Msg("Failed to create lecture")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"lecture_id": id})
}

// Delete godoc
// DELETE /lectures/:id
func (h *LectureHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.lectureService.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrLectureNotFound):
			response.FailMessage(c, http.StatusNotFound, "Lecture not found")
		case isForeignKeyViolation(err):
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
		default:
			h.log.Error().Err(err).Int("lecture_id", id).Msg("Failed to delete lecture")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Lecture deleted"})
}
