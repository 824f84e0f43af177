package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medtrack-api/internal/response"
	"medtrack-api/internal/service"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats godoc
// @Summary      Pending/completed counts per entity type for the dashboard
// @Tags         stats
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.StatsResponse}
// @Security     BearerAuth
// @Router       /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetStats(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, "Showing stats.", stats)
}
