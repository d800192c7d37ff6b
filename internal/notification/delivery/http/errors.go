package http

import (
	"errors"

	"taskboard-api/internal/notification"
	pkgErrors "taskboard-api/pkg/errors"
	"taskboard-api/pkg/response"
)

// mapError translates use case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, notification.ErrNotificationNotFound):
		return pkgErrors.NewHTTPError(404, "notification not found")
	default:
		return pkgErrors.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
