package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-api/internal/middleware"
	"taskboard-api/pkg/response"
)

// List godoc
// @Summary     List notifications
// @Description Returns the caller's notifications, newest first. Pass unread_only=true to hide read ones.
// @Tags        Notification
// @Produce     json
// @Param       unread_only query bool false "Only unread notifications"
// @Param       limit       query int  false "Page size (default 20, max 100)"
// @Param       offset      query int  false "Page offset"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notifications [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// MarkRead godoc
// @Summary     Mark a notification as read
// @Tags        Notification
// @Produce     json
// @Param       id path string true "Notification ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notifications/{id}/read [POST]
func (h *handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.MarkRead(ctx, middleware.OwnerID(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.MarkRead: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"message": "notification marked as read"})
}
