package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-api/internal/middleware"
	"taskboard-api/internal/notification"
	pkgErrors "taskboard-api/pkg/errors"
)

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (notification.ListNotificationsInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return notification.ListNotificationsInput{}, pkgErrors.NewHTTPError(400, "invalid query: "+err.Error())
	}
	return req.toInput(middleware.OwnerID(c)), nil
}
