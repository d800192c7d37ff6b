package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-api/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated owner.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notifs := rg.Group("/notifications", mw.Auth(), mw.RateLimit())
	{
		notifs.GET("", h.List)
		notifs.POST("/:id/read", h.MarkRead)
	}
}
