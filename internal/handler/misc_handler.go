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

// SemesterHandler serves the academic term listing.
type SemesterHandler struct {
	semesterService *service.SemesterService
	log             zerolog.Logger
}

func NewSemesterHandler(semesterService *service.SemesterService, log zerolog.Logger) *SemesterHandler {
	return &SemesterHandler{
		semesterService: semesterService,
		log:             log.With().Str("component", "semester_handler").Logger(),
	}
}

// GetAll godoc
// GET /semesters
func (h *SemesterHandler) GetAll(c *gin.Context) {
	semesters, err := h.semesterService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list semesters")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if semesters == nil {
		semesters = []model.Semester{}
	}
	response.JSON(c, http.StatusOK, semesters)
}

// EnrollmentHandler links students to offerings.
type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
	log               zerolog.Logger
}

func NewEnrollmentHandler(enrollmentService *service.EnrollmentService, log zerolog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
		log:               log.With().Str("component", "enrollment_handler").Logger(),
	}
}

// GetAll godoc
// GET /enrollments
func (h *EnrollmentHandler) GetAll(c *gin.Context) {
	enrollments, err := h.enrollmentService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list enrollments")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if enrollments == nil {
		enrollments = []model.EnrollmentRow{}
	}
	response.JSON(c, http.StatusOK, enrollments)
}

// Create godoc
// POST /enrollments
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req model.CreateEnrollmentRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.FailMessage(c, http.StatusBadRequest, msg)
		return
	}

	enrollment, err := h.enrollmentService.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEnrollment):
			response.FailMessage(c, http.StatusBadRequest, "Student is already enrolled in this offering")
		case isForeignKeyViolation(err):
			response.FailMessage(c, http.StatusBadRequest, "Student or offering does not exist")
		default:
			h.log.Error().Err(err).Msg("Failed to create enrollment")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.JSON(c, http.StatusCreated, enrollment)
}

// LookupHandler serves lookup domain picklists.
type LookupHandler struct {
	lookupService *service.LookupService
	log           zerolog.Logger
}

func NewLookupHandler(lookupService *service.LookupService, log zerolog.Logger) *LookupHandler {
	return &LookupHandler{
		lookupService: lookupService,
		log:           log.With().Str("component", "lookup_handler").Logger(),
	}
}

// GetByDomain godoc
// GET /lookup?domain=
func (h *LookupHandler) GetByDomain(c *gin.Context) {
	domain := c.Query("domain")
	if domain == "" {
		response.FailMessage(c, http.StatusBadRequest, "domain is required")
		return
	}

	options, err := h.lookupService.ActiveByDomain(c.Request.Context(), domain)
	if err != nil {
		h.log.Error().Err(err).Str("domain", domain).Msg("Failed to list lookup options")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if options == nil {
		options = []model.LookupOption{}
	}
	response.JSON(c, http.StatusOK, options)
}
