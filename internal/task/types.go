package task

import (
	"time"

	"taskboard-api/internal/model"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	OwnerID     string
	Title       string
	Description string
	Deadline    time.Time
	Priority    model.Priority
}

type ListTasksInput struct {
	OwnerID   string
	Completed *bool
	Priority  model.Priority
	Limit     int
	Offset    int
}

// UpdateTaskInput is a partial update. Date and Time carry the raw boundary
// strings: a client may change only one half of the deadline, so the missing
// half is taken from the stored task before the guard runs.
type UpdateTaskInput struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Date        string
	Time        string
	Priority    model.Priority
	Completed   *bool
}

type DeleteTaskInput struct {
	ID             string
	OwnerID        string
	ConfirmCascade bool
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}

// DeleteTaskOutput is either a completed deletion or a pending-action result.
// When RequiresConfirmation is set nothing was mutated and DependentTasks
// lists every direct dependent that a confirmed delete would remove.
type DeleteTaskOutput struct {
	RequiresConfirmation bool
	DependentTasks       []model.Task
	CascadeDeleted       int
}
