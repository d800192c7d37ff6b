package usecase

import (
	"context"

	"taskboard-api/internal/task"
	repo "taskboard-api/internal/task/repository"
)

// List returns a page of the owner's tasks ordered by deadline.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		OwnerID:   input.OwnerID,
		Completed: input.Completed,
		Priority:  input.Priority,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Detail retrieves a single task. Returns ErrTaskNotFound when missing or
// owned by someone else.
func (uc *implUseCase) Detail(ctx context.Context, ownerID, id string) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if t.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: t}, nil
}
