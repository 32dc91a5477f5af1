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

type OfferingHandler struct {
	offeringService *service.OfferingService
	log             zerolog.Logger
}

func NewOfferingHandler(offeringService *service.OfferingService, log zerolog.Logger) *OfferingHandler {
	return &OfferingHandler{
		offeringService: offeringService,
		log:             log.With().Str("component", "offering_handler").Logger(),
	}
}

// GetAll godoc
// GET /offerings?semester_id=&course_id=
func (h *OfferingHandler) GetAll(c *gin.Context) {
	offerings, err := h.offeringService.List(c.Request.Context(),
		parseIntQuery(c, "semester_id"), parseIntQuery(c, "course_id"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list offerings")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if offerings == nil {
		offerings = []model.Offering{}
	}
	response.JSON(c, http.StatusOK, offerings)
}

// Create godoc
// POST /offerings
func (h *OfferingHandler) Create(c *gin.Context) {
	var req model.CreateOfferingRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.FailMessage(c, http.StatusBadRequest, msg)
		return
	}

	id, err := h.offeringService.Create(c.Request.Context(), &req)
	if err != nil {
		if isForeignKeyViolation(err) {
			response.FailMessage(c, http.StatusBadRequest, "Course or semester does not exist")
			return
		}
		h.log.Error().Err(err).Msg("Failed to create offering")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"offering_id": id})
}

// Update godoc
// PUT /offerings/:id
func (h *OfferingHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateOfferingRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.FailMessage(c, http.StatusBadRequest, msg)
		return
	}

	if err := h.offeringService.Update(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, repository.ErrOfferingNotFound) {
			response.FailMessage(c, http.StatusNotFound, "Offering not found")
			return
		}
		h.log.Error().Err(err).Int("offering_id", id).Msg("Failed to update offering")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Offering updated"})
}

// Delete godoc
// DELETE /offerings/:id
func (h *OfferingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.offeringService.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrOfferingNotFound):
			response.FailMessage(c, http.StatusNotFound, "Offering not found")
		case isForeignKeyViolation(err):
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
		default:
			h.log.Error().Err(err).Int("offering_id", id).Msg("Failed to delete offering")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Offering deleted"})
}
