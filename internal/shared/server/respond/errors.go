package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-screening-backend/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, message string) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// Validation sends a 400 validation error.
func Validation(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "validation_error", message)
}

// Unauthorized sends a 401 error with the uniform "not authenticated" message.
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "unauthorized", "Not authenticated")
}
