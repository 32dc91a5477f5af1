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

type CourseHandler struct {
	courseService *service.CourseService
	log           zerolog.Logger
}

func NewCourseHandler(courseService *service.CourseService, log zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		log:           log.With().Str("component", "course_handler").Logger(),
	}
}

// GetAll godoc
// GET /courses
func (h *CourseHandler) GetAll(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list courses")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if courses == nil {
		courses = []model.Course{}
	}
	response.JSON(c, http.StatusOK, courses)
}

// GetByID godoc
// GET /courses/:id
func (h *CourseHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			response.FailMessage(c, http.StatusNotFound, "Course not found")
			return
		}
		h.log.Error().Err(err).Int("course_id", id).Msg("Failed to get course")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Create godoc
// POST /courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req model.CourseRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.FailMessage(c, http.StatusBadRequest, msg)
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create course")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.JSON(c, http.StatusCreated, course)
}

// Update godoc
// PUT /courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.CourseRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.FailMessage(c, http.StatusBadRequest, msg)
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			response.FailMessage(c, http.StatusNotFound, "Course not found")
			return
		}
		h.log.Error().Err(err).Int("course_id", id).Msg("Failed to update course")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Delete godoc
// DELETE /courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrCourseNotFound):
			response.FailMessage(c, http.StatusNotFound, "Course not found")
		case isForeignKeyViolation(err):
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
		default:
			h.log.Error().Err(err).Int("course_id", id).Msg("Failed to delete course")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Course deleted"})
}
