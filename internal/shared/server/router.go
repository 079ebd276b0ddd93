package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-intake/internal/shared/metrics"
	"resume-intake/internal/shared/server/middleware"
	"resume-intake/internal/shared/server/respond"
	"resume-intake/internal/uploads"
)

// NewRouter constructs the Gin engine for local development with middleware and routes registered.
func NewRouter(intake *uploads.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.Text(c, http.StatusOK, "ok")
	})
	intake.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
