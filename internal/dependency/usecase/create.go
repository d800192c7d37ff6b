package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskboard-api/internal/dependency"
	repo "taskboard-api/internal/dependency/repository"
	"taskboard-api/internal/model"
)

// Create validates and persists a new edge, then emits dependency.created.
// No edge row is written on any validation failure. A duplicate slipping past
// the precondition check in a concurrent race is caught by the store's unique
// index and surfaces as the same ErrDuplicateEdge.
func (uc *implUseCase) Create(ctx context.Context, input dependency.CreateEdgeInput) (dependency.CreateEdgeOutput, error) {
	dependentTask, prerequisiteTask, err := uc.checkPreconditions(
		ctx, input.OwnerID, input.DependentTaskID, input.PrerequisiteTaskID,
	)
	if err != nil {
		return dependency.CreateEdgeOutput{}, err
	}

	edge, err := uc.repo.CreateEdge(ctx, repo.CreateEdgeOptions{
		OwnerID:            input.OwnerID,
		PrerequisiteTaskID: input.PrerequisiteTaskID,
		DependentTaskID:    input.DependentTaskID,
		Description:        input.Description,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatePair) {
			return dependency.CreateEdgeOutput{}, dependency.ErrDuplicateEdge
		}
		uc.l.Errorf(ctx, "uc.Create CreateEdge: %v", err)
		return dependency.CreateEdgeOutput{}, err
	}

	uc.sink.Emit(ctx, model.Event{
		Name:    model.EventDependencyCreated,
		OwnerID: input.OwnerID,
		Message: fmt.Sprintf("%q now depends on %q", dependentTask.Title, prerequisiteTask.Title),
		Data: map[string]any{
			"dependency_id":     edge.ID,
			"dependent_task":    map[string]any{"id": dependentTask.ID, "title": dependentTask.Title},
			"prerequisite_task": map[string]any{"id": prerequisiteTask.ID, "title": prerequisiteTask.Title},
		},
		OccurredAt: time.Now().UTC(),
	})

	return dependency.CreateEdgeOutput{
		Edge:             edge,
		PrerequisiteTask: prerequisiteTask,
		DependentTask:    dependentTask,
	}, nil
}
