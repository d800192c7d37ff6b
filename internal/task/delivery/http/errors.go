package http

import (
	"errors"

	"taskboard-api/internal/dependency"
	"taskboard-api/internal/task"
	pkgErrors "taskboard-api/pkg/errors"
	"taskboard-api/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	var deadlineErr *dependency.DeadlineViolationError
	if errors.As(err, &deadlineErr) {
		return pkgErrors.NewHTTPError(400, deadlineErr.Error()).WithDetails(deadlineErr.Details())
	}

	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(400, "priority must be one of high, medium, low")
	case errors.Is(err, task.ErrInvalidDeadline):
		return pkgErrors.NewHTTPError(400, "invalid date/time format")
	default:
		return pkgErrors.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
