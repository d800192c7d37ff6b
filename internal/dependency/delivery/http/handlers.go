package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-api/internal/middleware"
	"taskboard-api/pkg/response"
)

// List godoc
// @Summary     List all dependencies
// @Description Returns every dependency edge for the caller, populated with both endpoint tasks.
// @Tags        Dependency
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dependencies [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, middleware.OwnerID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListForTask godoc
// @Summary     List dependencies for one task
// @Description Splits the task's edges into prerequisites (tasks it waits on) and dependents (tasks waiting on it).
// @Tags        Dependency
// @Produce     json
// @Param       taskId path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/v1/dependencies/task/{taskId} [GET]
func (h *handler) ListForTask(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListForTask(ctx, middleware.OwnerID(c), c.Param("taskId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListForTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskEdgesResp(output))
}

// Create godoc
// @Summary     Create a dependency
// @Description Declares that one task depends on another. Rejected when the edge would form a cycle, break the deadline ordering rule, duplicate an existing edge, or reference the task itself.
// @Tags        Dependency
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Edge data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Cycle / deadline / duplicate / self"
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/v1/dependencies [POST]
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

	response.Created(c, h.newCreateResp(output))
}

// Validate godoc
// @Summary     Validate a dependency without creating it
// @Description Dry-run of the create precondition chain, for UI pre-flight checks. Persists nothing.
// @Tags        Dependency
// @Accept      json
// @Produce     json
// @Param       body body validateReq true "Edge to check"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Cycle / deadline / duplicate / self"
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/v1/dependencies/validate [POST]
func (h *handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processValidateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Validate(ctx, input); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"valid": true})
}

// Update godoc
// @Summary     Update a dependency description
// @Description Only the description is mutable; rewiring an edge is delete + create.
// @Tags        Dependency
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Dependency ID"
// @Param       body body updateReq true "New description"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/dependencies/{id} [PUT]
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

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a dependency
// @Description Removes one edge. The endpoint tasks are untouched.
// @Tags        Dependency
// @Produce     json
// @Param       id path string true "Dependency ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/dependencies/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, middleware.OwnerID(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"message": "dependency deleted"})
}
