package errors

import "fmt"

// HTTPError is the boundary error type the delivery layer hands to
// pkg/response. Details carries structured context (task snapshots,
// dependent lists) that the UI can render without a follow-up lookup.
type HTTPError struct {
	Status  int            `json:"-"`
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("code: %d, message: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError whose Code defaults to the HTTP status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Code: status, Message: message}
}

// WithDetails attaches structured context and returns the same error.
func (e *HTTPError) WithDetails(details map[string]any) *HTTPError {
	e.Details = details
	return e
}
