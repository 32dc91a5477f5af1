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

type StudentHandler struct {
	studentService *service.StudentService
	log            zerolog.Logger
}

func NewStudentHandler(studentService *service.StudentService, log zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		log:            log.With().Str("component", "student_handler").Logger(),
	}
}

// GetAll godoc
// GET /students
func (h *StudentHandler) GetAll(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list students")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if students == nil {
		students = []model.Student{}
	}
	response.JSON(c, http.StatusOK, students)
}

// GetByID godoc
// GET /students/:id
func (h *StudentHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	student, err := h.studentService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			response.FailMessage(c, http.StatusNotFound, "Student not found")
			return
		}
		h.log.Error().Err(err).Int("student_id", id).Msg("Failed to get student")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Create godoc
// POST /students
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.StudentRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.FailMessage(c, http.StatusBadRequest, msg)
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.FailMessage(c, http.StatusBadRequest, "Email already exists")
			return
		}
		h.log.Error().Err(err).Msg("Failed to create student")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.JSON(c, http.StatusCreated, student)
}

// Update godoc
// PUT /students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.StudentRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.FailMessage(c, http.StatusBadRequest, msg)
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStudentNotFound):
			response.FailMessage(c, http.StatusNotFound, "Student not found")
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.FailMessage(c, http.StatusBadRequest, "Email already exists")
		default:
			h.log.Error().Err(err).Int("student_id", id).Msg("Failed to update student")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Delete godoc
// DELETE /students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrStudentNotFound):
			response.FailMessage(c, http.StatusNotFound, "Student not found")
		case isForeignKeyViolation(err):
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
		default:
			h.log.Error().Err(err).Int("student_id", id).Msg("Failed to delete student")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Student deleted"})
}
