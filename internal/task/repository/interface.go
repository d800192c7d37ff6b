package repository

import (
	"context"

	"taskboard-api/internal/model"
)

// Repository defines all data access methods for the Task entity. Every
// method is owner-scoped; cross-owner reads are structurally impossible.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetOneTask returns the zero-value Task (ID == "") when not found.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	// GetTasksByIDs returns the tasks that exist; missing ids are simply absent.
	GetTasksByIDs(ctx context.Context, ownerID string, ids []string) ([]model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	// DeleteTasks removes every listed task in one statement.
	DeleteTasks(ctx context.Context, ownerID string, ids []string) error
}
