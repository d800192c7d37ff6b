package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-api/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated owner.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	deps := rg.Group("/dependencies", mw.Auth(), mw.RateLimit())
	{
		deps.GET("", h.List)
		deps.GET("/task/:taskId", h.ListForTask)
		deps.POST("", h.Create)
		deps.POST("/validate", h.Validate)
		deps.PUT("/:id", h.Update)
		deps.DELETE("/:id", h.Delete)
	}
}
