package repository

import (
	"time"

	"taskboard-api/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	OwnerID     string
	Title       string
	Description string
	Deadline    time.Time
	Priority    model.Priority
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID      string
	OwnerID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	OwnerID   string
	Completed *bool
	Priority  model.Priority
	Limit     int
	Offset    int
}

// UpdateTaskOptions holds the full replacement state for an existing Task.
// Partial-update semantics (coalescing with the stored row) live in the
// usecase; the repository writes what it is given.
type UpdateTaskOptions struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Deadline    time.Time
	Priority    model.Priority
	Completed   bool
}
