package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/middleware"
	"taskboard-api/internal/task"
	"taskboard-api/pkg/deadline"
	pkgErrors "taskboard-api/pkg/errors"
)

// processCreateReq binds the create body and resolves the deadline instant.
func (h *handler) processCreateReq(c *gin.Context) (task.CreateTaskInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CreateTaskInput{}, pkgErrors.NewHTTPError(400, "invalid payload: "+err.Error())
	}

	instant, err := deadline.Parse(req.Date, req.Time)
	if err != nil {
		return task.CreateTaskInput{}, pkgErrors.NewHTTPError(400, err.Error())
	}

	return req.toInput(middleware.OwnerID(c), instant), nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (task.ListTasksInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return task.ListTasksInput{}, pkgErrors.NewHTTPError(400, "invalid query: "+err.Error())
	}
	return req.toInput(middleware.OwnerID(c)), nil
}

// processUpdateReq binds the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (task.UpdateTaskInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.UpdateTaskInput{}, pkgErrors.NewHTTPError(400, "invalid payload: "+err.Error())
	}
	return req.toInput(middleware.OwnerID(c), c.Param("id")), nil
}

// processDeleteReq binds the optional cascade-confirmation body.
// An empty body means an unconfirmed delete.
func (h *handler) processDeleteReq(c *gin.Context) (task.DeleteTaskInput, error) {
	var req deleteReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return task.DeleteTaskInput{}, pkgErrors.NewHTTPError(400, "invalid payload: "+err.Error())
	}

	return task.DeleteTaskInput{
		ID:             c.Param("id"),
		OwnerID:        middleware.OwnerID(c),
		ConfirmCascade: req.ConfirmCascade,
	}, nil
}
