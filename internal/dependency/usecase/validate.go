package usecase

import (
	"context"

	"taskboard-api/internal/dependency"
	repo "taskboard-api/internal/dependency/repository"
	"taskboard-api/internal/model"
	taskRepo "taskboard-api/internal/task/repository"
)

// checkPreconditions runs the edge-creation precondition chain without
// persisting anything. First failure wins: self-loop, existence/ownership of
// both tasks, acyclicity, deadline ordering, uniqueness. On success it
// returns both task snapshots for event payloads and responses.
func (uc *implUseCase) checkPreconditions(ctx context.Context, ownerID, dependentID, prerequisiteID string) (dependentTask, prerequisiteTask model.Task, err error) {
	if dependentID == prerequisiteID {
		return model.Task{}, model.Task{}, dependency.ErrSelfDependency
	}

	dependentTask, err = uc.taskRepo.GetOneTask(ctx, taskRepo.GetOneTaskOptions{ID: dependentID, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkPreconditions GetOneTask dependent: %v", err)
		return model.Task{}, model.Task{}, err
	}
	if dependentTask.ID == "" {
		return model.Task{}, model.Task{}, dependency.ErrTaskNotFound
	}

	prerequisiteTask, err = uc.taskRepo.GetOneTask(ctx, taskRepo.GetOneTaskOptions{ID: prerequisiteID, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkPreconditions GetOneTask prerequisite: %v", err)
		return model.Task{}, model.Task{}, err
	}
	if prerequisiteTask.ID == "" {
		return model.Task{}, model.Task{}, dependency.ErrTaskNotFound
	}

	cyclic, err := uc.wouldCreateCycle(ctx, ownerID, prerequisiteID, dependentID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkPreconditions wouldCreateCycle: %v", err)
		return model.Task{}, model.Task{}, err
	}
	if cyclic {
		return model.Task{}, model.Task{}, dependency.ErrCircularDependency
	}

	// The dependent must be due no later than its prerequisite. Compared on
	// the normalized UTC instants only.
	if dependentTask.Deadline.After(prerequisiteTask.Deadline) {
		return model.Task{}, model.Task{}, &dependency.DeadlineViolationError{
			DependentTask:    dependentTask,
			PrerequisiteTask: prerequisiteTask,
		}
	}

	existing, err := uc.repo.GetOneEdge(ctx, repo.GetOneEdgeOptions{
		OwnerID:            ownerID,
		DependentTaskID:    dependentID,
		PrerequisiteTaskID: prerequisiteID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkPreconditions GetOneEdge: %v", err)
		return model.Task{}, model.Task{}, err
	}
	if existing.ID != "" {
		return model.Task{}, model.Task{}, dependency.ErrDuplicateEdge
	}

	return dependentTask, prerequisiteTask, nil
}

// Validate is the dry-run counterpart of Create for UI pre-flight checks.
func (uc *implUseCase) Validate(ctx context.Context, input dependency.ValidateEdgeInput) error {
	_, _, err := uc.checkPreconditions(ctx, input.OwnerID, input.DependentTaskID, input.PrerequisiteTaskID)
	return err
}
