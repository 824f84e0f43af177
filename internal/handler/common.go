package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medtrack-api/internal/response"
)

const (
	defaultPage = 0
	defaultSize = 9
	maxSize     = 100
)

// currentUserID extracts the authenticated user id set by the auth
// middleware. Returns false after writing an error response when absent.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userID, true
}

// parseEntityID parses the :id path parameter. A malformed id is a 400,
// never a 404.
func parseEntityID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads page/size query parameters with defaults
func parsePagination(c *gin.Context) (page, size int) {
	page = defaultPage
	size = defaultSize
	if p, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage))); err == nil && p >= 0 {
		page = p
	}
	if s, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize))); err == nil && s > 0 && s <= maxSize {
		size = s
	}
	return page, size
}

// parseCompletedFilter reads the optional completed query parameter
func parseCompletedFilter(c *gin.Context) *bool {
	raw, exists := c.GetQuery("completed")
	if !exists {
		return nil
	}
	completed, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &completed
}
