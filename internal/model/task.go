package model

import "time"

// Priority is the task priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid reports whether p is a known priority level.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task is a single task owned by one user. Deadline is the normalized UTC
// instant combining the task's due date and due time; the DD/MM/YYYY and
// h:mm AM/PM display strings exist only at the HTTP boundary.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Deadline    time.Time
	Priority    Priority
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
