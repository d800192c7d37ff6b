package dependency

import (
	"errors"
	"fmt"

	"taskboard-api/internal/model"
	"taskboard-api/pkg/deadline"
)

// Domain-specific errors for the dependency package.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrEdgeNotFound       = errors.New("dependency not found")
	ErrSelfDependency     = errors.New("a task cannot depend on itself")
	ErrCircularDependency = errors.New("dependency would create a cycle")
	ErrDuplicateEdge      = errors.New("dependency already exists")
	ErrDeadlineViolation  = errors.New("deadline ordering violated")
)

// DeadlineViolationError carries both task snapshots so the message (and the
// structured details derived from it) can be shown to the user directly.
// It unwraps to ErrDeadlineViolation for errors.Is checks.
type DeadlineViolationError struct {
	DependentTask    model.Task
	PrerequisiteTask model.Task
}

func (e *DeadlineViolationError) Error() string {
	return fmt.Sprintf(
		"task %q (due %s) must be due no later than its prerequisite %q (due %s)",
		e.DependentTask.Title, deadline.Format(e.DependentTask.Deadline),
		e.PrerequisiteTask.Title, deadline.Format(e.PrerequisiteTask.Deadline),
	)
}

func (e *DeadlineViolationError) Unwrap() error { return ErrDeadlineViolation }

// Details renders the snapshots as a structured payload for error responses.
func (e *DeadlineViolationError) Details() map[string]any {
	return map[string]any{
		"dependent_task": map[string]any{
			"id":       e.DependentTask.ID,
			"title":    e.DependentTask.Title,
			"deadline": deadline.Format(e.DependentTask.Deadline),
		},
		"prerequisite_task": map[string]any{
			"id":       e.PrerequisiteTask.ID,
			"title":    e.PrerequisiteTask.Title,
			"deadline": deadline.Format(e.PrerequisiteTask.Deadline),
		},
	}
}
