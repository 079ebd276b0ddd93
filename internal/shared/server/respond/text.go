package respond

import (
	"github.com/gin-gonic/gin"

	"resume-intake/internal/shared/telemetry"
)

// Text writes a plain-text response with the given status.
func Text(c *gin.Context, status int, body string) {
	c.String(status, body)
}

// Error logs the failure and aborts with a plain-text body.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})
	c.String(status, message)
	c.Abort()
}
