package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medtrack-api/internal/dto"
	"medtrack-api/internal/response"
	"medtrack-api/internal/service"
)

type MedicationHandler struct {
	medicationService service.MedicationService
}

func NewMedicationHandler(medicationService service.MedicationService) *MedicationHandler {
	return &MedicationHandler{
		medicationService: medicationService,
	}
}

// GetMedications godoc
// @Summary      List the caller's medications with pagination
// @Tags         medications
// @Produce      json
// @Param        page query int false "Page number" default(0)
// @Param        size query int false "Page size" default(9)
// @Param        completed query bool false "Filter by completion flag"
// @Success      202 {object} response.PaginatedResponse{data=[]dto.MedicationResponse}
// @Security     BearerAuth
// @Router       /medications [get]
func (h *MedicationHandler) GetMedications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, size := parsePagination(c)

	medications, totalPages, totalElements, err := h.medicationService.GetMedications(c.Request.Context(), userID, page, size, parseCompletedFilter(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendPaginated(c, http.StatusAccepted, "Showing medications.", medications, totalPages, totalElements)
}

// CreateMedication godoc
// @Summary      Register a new medication
// @Tags         medications
// @Accept       json
// @Produce      json
// @Param        request body dto.MedicationRequest true "Medication payload"
// @Success      201 {object} response.SuccessResponse{data=dto.MedicationResponse}
// @Failure      400 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /medications [post]
func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	medication, err := h.medicationService.CreateMedication(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Medication registered successfully!", medication)
}

// UpdateMedication godoc
// @Summary      Edit the selected medication
// @Tags         medications
// @Accept       json
// @Produce      json
// @Param        id path string true "Medication ID (UUID)"
// @Param        request body dto.MedicationRequest true "Medication payload"
// @Success      202 {object} response.SuccessResponse{data=dto.MedicationResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /medications/{id} [put]
func (h *MedicationHandler) UpdateMedication(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	medicationID, ok := parseEntityID(c)
	if !ok {
		return
	}

	var req dto.MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	medication, err := h.medicationService.UpdateMedication(c.Request.Context(), userID, medicationID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusAccepted, "Medication updated successfully!", medication)
}

// DeleteMedication godoc
// @Summary      Remove the medication
// @Tags         medications
// @Produce      json
// @Param        id path string true "Medication ID (UUID)"
// @Success      202 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /medications/{id} [delete]
func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	medicationID, ok := parseEntityID(c)
	if !ok {
		return
	}

	if err := h.medicationService.DeleteMedication(c.Request.Context(), userID, medicationID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusAccepted, "Medication removed successfully!", nil)
}

// ToggleComplete godoc
// @Summary      Toggle the medication's completion flag
// @Tags         medications
// @Produce      json
// @Param        id path string true "Medication ID (UUID)"
// @Success      202 {object} response.SuccessResponse{data=dto.MedicationResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /medications/{id}/complete [patch]
func (h *MedicationHandler) ToggleComplete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	medicationID, ok := parseEntityID(c)
	if !ok {
		return
	}

	medication, err := h.medicationService.ToggleComplete(c.Request.Context(), userID, medicationID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusAccepted, "Medication status updated successfully!", medication)
}
