package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medtrack-api/internal/response"
	"medtrack-api/internal/service"
)

type EventLogHandler struct {
	eventLogService service.EventLogService
}

func NewEventLogHandler(eventLogService service.EventLogService) *EventLogHandler {
	return &EventLogHandler{
		eventLogService: eventLogService,
	}
}

// GetHistory godoc
// @Summary      List the caller's audit trail, newest first
// @Tags         history
// @Produce      json
// @Param        page query int false "Page number" default(0)
// @Param        size query int false "Page size" default(9)
// @Success      200 {object} response.PaginatedResponse{data=[]dto.EventLogResponse}
// @Security     BearerAuth
// @Router       /history [get]
func (h *EventLogHandler) GetHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, size := parsePagination(c)

	events, totalPages, totalElements, err := h.eventLogService.GetHistory(c.Request.Context(), userID, page, size)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendPaginated(c, http.StatusOK, "Showing history.", events, totalPages, totalElements)
}
