package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload as a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes payload as a 200 response. Success bodies here are plain
// objects; only errors get the envelope from Error.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}
