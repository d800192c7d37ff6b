package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-api/internal/middleware"
	"taskboard-api/pkg/response"
)

// Create godoc
// @Summary     Create a new task
// @Description Creates a task with a title, due date/time, and priority.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newTaskResp(output.Task))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated list of the caller's tasks ordered by deadline.
// @Tags        Task
// @Produce     json
// @Param       completed query bool   false "Filter by completion"
// @Param       priority  query string false "Filter by priority (high/medium/low)"
// @Param       limit     query int    false "Page size (default: 20)"
// @Param       offset    query int    false "Page offset (default: 0)"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
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

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.Detail(ctx, middleware.OwnerID(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Deadline changes are validated against the task's dependency edges and rejected when the ordering rule would break.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Deadline violation / bad payload"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Deletes a task. If other tasks depend on it, responds 409 with the dependent list until the caller confirms the cascade; a confirmed delete removes the task, its direct dependents, and every touching edge.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body deleteReq false "Cascade confirmation"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Confirmation required"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if output.RequiresConfirmation {
		response.PendingConfirmation(c, "task has dependents; confirm cascade delete", h.newPendingDeleteResp(output))
		return
	}

	response.OK(c, h.newDeleteResp(output))
}
