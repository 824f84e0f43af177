package response

import (
	"github.com/gin-gonic/gin"
)

// SuccessResponse is the uniform envelope returned by single-entity operations
type SuccessResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PaginatedResponse is the envelope returned by list operations
type PaginatedResponse struct {
	Status        int         `json:"status"`
	Message       string      `json:"message"`
	Data          interface{} `json:"data"`
	TotalPages    int         `json:"totalPages"`
	TotalElements int64       `json:"totalElements"`
}

// ErrorResponse is the envelope returned on failure
type ErrorResponse struct {
	Status  int       `json:"status"`
	Message string    `json:"message"`
	Error   ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable error code
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendSuccess writes a success envelope with the given status and payload
func SendSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, SuccessResponse{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// SendPaginated writes a list envelope with page metadata
func SendPaginated(c *gin.Context, status int, message string, data interface{}, totalPages int, totalElements int64) {
	c.JSON(status, PaginatedResponse{
		Status:        status,
		Message:       message,
		Data:          data,
		TotalPages:    totalPages,
		TotalElements: totalElements,
	})
}

// SendError writes an error envelope
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Status:  status,
		Message: message,
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}
