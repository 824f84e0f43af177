package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medtrack-api/internal/dto"
	"medtrack-api/internal/response"
	"medtrack-api/internal/service"
)

type ExamHandler struct {
	examService service.ExamService
}

func NewExamHandler(examService service.ExamService) *ExamHandler {
	return &ExamHandler{
		examService: examService,
	}
}

// GetExams godoc
// @Summary      List the caller's exams with pagination
// @Tags         exams
// @Produce      json
// @Param        page query int false "Page number" default(0)
// @Param        size query int false "Page size" default(9)
// @Param        completed query bool false "Filter by completion flag"
// @Success      202 {object} response.PaginatedResponse{data=[]dto.ExamResponse}
// @Security     BearerAuth
// @Router       /exams [get]
func (h *ExamHandler) GetExams(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, size := parsePagination(c)

	exams, totalPages, totalElements, err := h.examService.GetExams(c.Request.Context(), userID, page, size, parseCompletedFilter(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendPaginated(c, http.StatusAccepted, "Showing exams.", exams, totalPages, totalElements)
}

// CreateExam godoc
// @Summary      Register a new exam
// @Tags         exams
// @Accept       json
// @Produce      json
// @Param        request body dto.ExamRequest true "Exam payload"
// @Success      201 {object} response.SuccessResponse{data=dto.ExamResponse}
// @Failure      400 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /exams [post]
func (h *ExamHandler) CreateExam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	exam, err := h.examService.CreateExam(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, "Exam registered successfully!", exam)
}

// UpdateExam godoc
// @Summary      Edit the selected exam
// @Tags         exams
// @Accept       json
// @Produce      json
// @Param        id path string true "Exam ID (UUID)"
// @Param        request body dto.ExamRequest true "Exam payload"
// @Success      202 {object} response.SuccessResponse{data=dto.ExamResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /exams/{id} [put]
func (h *ExamHandler) UpdateExam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	examID, ok := parseEntityID(c)
	if !ok {
		return
	}

	var req dto.ExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	exam, err := h.examService.UpdateExam(c.Request.Context(), userID, examID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusAccepted, "Exam updated successfully!", exam)
}

// DeleteExam godoc
// @Summary      Delete the exam permanently
// @Tags         exams
// @Produce      json
// @Param        id path string true "Exam ID (UUID)"
// @Success      202 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /exams/{id} [delete]
func (h *ExamHandler) DeleteExam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	examID, ok := parseEntityID(c)
	if !ok {
		return
	}

	if err := h.examService.DeleteExam(c.Request.Context(), userID, examID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusAccepted, "Exam deleted successfully!", nil)
}

// ToggleComplete godoc
// @Summary      Toggle the exam's completion flag
// @Tags         exams
// @Produce      json
// @Param        id path string true "Exam ID (UUID)"
// @Success      202 {object} response.SuccessResponse{data=dto.ExamResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /exams/{id}/complete [patch]
func (h *ExamHandler) ToggleComplete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	examID, ok := parseEntityID(c)
	if !ok {
		return
	}

	exam, err := h.examService.ToggleComplete(c.Request.Context(), userID, examID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusAccepted, "Exam status updated successfully!", exam)
}
