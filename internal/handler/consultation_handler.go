package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medtrack-api/internal/dto"
	"medtrack-api/internal/response"
	"medtrack-api/internal/service"
)

type ConsultationHandler struct {
	consultationService service.ConsultationService
}

func NewConsultationHandler(consultationService service.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{
		consultationService: consultationService,
	}
}

// GetConsultations godoc
// @Summary      List the caller's consultations with pagination
// @Tags         consultations
// @Produce      json
// @Param        page query int false "Page number" default(0)
// @Param        size query int false "Page size" default(9)
// @Param        completed query bool false "Filter by completion flag"
// @Success      202 {object} response.PaginatedResponse{data=[]dto.ConsultationResponse}
// @Security     BearerAuth
// @Router       /consultations [get]
func (h *ConsultationHandler) GetConsultations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, size := parsePagination(c)

	consultations, totalPages, totalElements, err := h.consultationService.GetConsultations(c.Request.Context(), userID, page, size, parseCompletedFilter(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendPaginated(c, http.StatusAccepted, "Showing consultations.", consultations, totalPages, totalElements)
}

// CreateConsultation godoc
// @Summary      Schedule a new consultation
// @Tags         consultations
// @Accept       json
// @Produce      json
// @Param        request body dto.ConsultationRequest true "Consultation payload"
// @Success      201 {object} response.SuccessResponse{data=dto.ConsultationResponse}
// @Failure      400 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /consultations [post]
func (h *ConsultationHandler) CreateConsultation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	consultation, err := h.consultationService.CreateConsultation(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Consultation scheduled successfully!", consultation)
}

// UpdateConsultation godoc
// @Summary      Edit the selected consultation
// @Tags         consultations
// @Accept       json
// @Produce      json
// @Param        id path string true "Consultation ID (UUID)"
// @Param        request body dto.ConsultationRequest true "Consultation payload"
// @Success      202 {object} response.SuccessResponse{data=dto.ConsultationResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /consultations/{id} [put]
func (h *ConsultationHandler) UpdateConsultation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	consultationID, ok := parseEntityID(c)
	if !ok {
		return
	}

	var req dto.ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	consultation, err := h.consultationService.UpdateConsultation(c.Request.Context(), userID, consultationID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusAccepted, "Consultation updated successfully!", consultation)
}

// DeleteConsultation godoc
// @Summary      Remove the consultation
// @Tags         consultations
// @Produce      json
// @Param        id path string true "Consultation ID (UUID)"
// @Success      202 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /consultations/{id} [delete]
func (h *ConsultationHandler) DeleteConsultation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	consultationID, ok := parseEntityID(c)
	if !ok {
		return
	}

	if err := h.consultationService.DeleteConsultation(c.Request.Context(), userID, consultationID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusAccepted, "Consultation removed successfully!", nil)
}

// ToggleComplete godoc
// @Summary      Toggle the consultation's completion flag
// @Tags         consultations
// @Produce      json
// @Param        id path string true "Consultation ID (UUID)"
// @Success      202 {object} response.SuccessResponse{data=dto.ConsultationResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /consultations/{id}/complete [patch]
func (h *ConsultationHandler) ToggleComplete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	consultationID, ok := parseEntityID(c)
	if !ok {
		return
	}

	consultation, err := h.consultationService.ToggleComplete(c.Request.Context(), userID, consultationID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusAccepted, "Consultation status updated successfully!", consultation)
}
