package usecase

import (
	"context"
	"fmt"
	"time"

	"taskboard-api/internal/dependency"
	repo "taskboard-api/internal/dependency/repository"
	"taskboard-api/internal/model"
)

// Update modifies an edge's description. The endpoints are immutable after
// creation; rewiring an edge is delete + create.
func (uc *implUseCase) Update(ctx context.Context, input dependency.UpdateEdgeInput) (dependency.UpdateEdgeOutput, error) {
	existing, err := uc.repo.GetOneEdge(ctx, repo.GetOneEdgeOptions{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneEdge: %v", err)
		return dependency.UpdateEdgeOutput{}, err
	}
	if existing.ID == "" {
		return dependency.UpdateEdgeOutput{}, dependency.ErrEdgeNotFound
	}

	edge, err := uc.repo.UpdateEdge(ctx, repo.UpdateEdgeOptions{
		ID:          input.ID,
		OwnerID:     input.OwnerID,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEdge: %v", err)
		return dependency.UpdateEdgeOutput{}, err
	}

	uc.sink.Emit(ctx, model.Event{
		Name:       model.EventDependencyUpdated,
		OwnerID:    input.OwnerID,
		Message:    "Dependency description updated",
		Data:       map[string]any{"dependency_id": edge.ID},
		OccurredAt: time.Now().UTC(),
	})

	return dependency.UpdateEdgeOutput{Edge: edge}, nil
}

// Delete removes an edge and emits dependency.deleted with both task titles.
// Deleting a missing edge is ErrEdgeNotFound.
func (uc *implUseCase) Delete(ctx context.Context, ownerID, id string) error {
	existing, err := uc.repo.GetOneEdge(ctx, repo.GetOneEdgeOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneEdge: %v", err)
		return err
	}
	if existing.ID == "" {
		return dependency.ErrEdgeNotFound
	}

	if err := uc.repo.DeleteEdge(ctx, ownerID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEdge: %v", err)
		return err
	}

	// Titles are best-effort: either endpoint may already be gone.
	titles := map[string]string{
		existing.DependentTaskID:    existing.DependentTaskID,
		existing.PrerequisiteTaskID: existing.PrerequisiteTaskID,
	}
	tasks, err := uc.taskRepo.GetTasksByIDs(ctx, ownerID, []string{existing.DependentTaskID, existing.PrerequisiteTaskID})
	if err == nil {
		for _, t := range tasks {
			titles[t.ID] = t.Title
		}
	}

	uc.sink.Emit(ctx, model.Event{
		Name:    model.EventDependencyDeleted,
		OwnerID: ownerID,
		Message: fmt.Sprintf("%q no longer depends on %q",
			titles[existing.DependentTaskID], titles[existing.PrerequisiteTaskID]),
		Data: map[string]any{
			"dependency_id":        existing.ID,
			"dependent_task_id":    existing.DependentTaskID,
			"prerequisite_task_id": existing.PrerequisiteTaskID,
		},
		OccurredAt: time.Now().UTC(),
	})

	return nil
}
