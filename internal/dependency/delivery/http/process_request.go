package http

import (
	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dependency"
	"taskboard-api/internal/middleware"
	pkgErrors "taskboard-api/pkg/errors"
)

// processCreateReq binds and validates the create edge request body.
func (h *handler) processCreateReq(c *gin.Context) (dependency.CreateEdgeInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return dependency.CreateEdgeInput{}, pkgErrors.NewHTTPError(400, "invalid payload: "+err.Error())
	}
	return req.toInput(middleware.OwnerID(c)), nil
}

// processValidateReq binds the dry-run request body.
func (h *handler) processValidateReq(c *gin.Context) (dependency.ValidateEdgeInput, error) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return dependency.ValidateEdgeInput{}, pkgErrors.NewHTTPError(400, "invalid payload: "+err.Error())
	}
	return req.toInput(middleware.OwnerID(c)), nil
}

// processUpdateReq binds the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (dependency.UpdateEdgeInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return dependency.UpdateEdgeInput{}, pkgErrors.NewHTTPError(400, "invalid payload: "+err.Error())
	}
	return req.toInput(middleware.OwnerID(c), c.Param("id")), nil
}
