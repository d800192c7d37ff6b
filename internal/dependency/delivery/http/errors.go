package http

import (
	"errors"

	"taskboard-api/internal/dependency"
	pkgErrors "taskboard-api/pkg/errors"
	"taskboard-api/pkg/response"
)

// mapError translates use case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	var dve *dependency.DeadlineViolationError
	if errors.As(err, &dve) {
		return pkgErrors.NewHTTPError(400, dve.Error()).WithDetails(dve.Details())
	}

	switch {
	case errors.Is(err, dependency.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, dependency.ErrEdgeNotFound):
		return pkgErrors.NewHTTPError(404, "dependency not found")
	case errors.Is(err, dependency.ErrSelfDependency):
		return pkgErrors.NewHTTPError(400, "a task cannot depend on itself")
	case errors.Is(err, dependency.ErrCircularDependency):
		return pkgErrors.NewHTTPError(400, "dependency would create a circular chain")
	case errors.Is(err, dependency.ErrDuplicateEdge):
		return pkgErrors.NewHTTPError(400, "dependency already exists")
	case errors.Is(err, dependency.ErrDeadlineViolation):
		return pkgErrors.NewHTTPError(400, "dependent task deadline must not be later than its prerequisite")
	default:
		return pkgErrors.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
