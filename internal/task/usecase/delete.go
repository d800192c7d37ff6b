package usecase

import (
	"context"
	"fmt"
	"time"

	depRepo "taskboard-api/internal/dependency/repository"
	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	repo "taskboard-api/internal/task/repository"
)

// Delete removes a task, cascading to its direct dependents. Deleting a task
// that other tasks depend on is destructive beyond one row, so without
// confirmation it is a dry run: the output lists every direct dependent and
// nothing is mutated. With confirmation (or no dependents) the task, its
// direct dependents, and every edge touching any removed task are deleted,
// and one aggregate task.deleted event reports the cascade count.
//
// Cascade is deliberately direct-only: a dependent-of-a-dependent survives
// orphaned. The edge cleanup still removes its link to the deleted task, so
// no edge ever references a missing task.
func (uc *implUseCase) Delete(ctx context.Context, input task.DeleteTaskInput) (task.DeleteTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return task.DeleteTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.DeleteTaskOutput{}, task.ErrTaskNotFound
	}

	dependentEdges, err := uc.depRepo.ListEdges(ctx, depRepo.ListEdgesOptions{
		OwnerID:            input.OwnerID,
		PrerequisiteTaskID: input.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete ListEdges: %v", err)
		return task.DeleteTaskOutput{}, err
	}

	dependentIDs := uniqueDependentIDs(dependentEdges)

	if len(dependentIDs) > 0 && !input.ConfirmCascade {
		dependents, depErr := uc.repo.GetTasksByIDs(ctx, input.OwnerID, dependentIDs)
		if depErr != nil {
			uc.l.Errorf(ctx, "uc.Delete GetTasksByIDs: %v", depErr)
			return task.DeleteTaskOutput{}, depErr
		}
		return task.DeleteTaskOutput{
			RequiresConfirmation: true,
			DependentTasks:       dependents,
		}, nil
	}

	doomed := append([]string{input.ID}, dependentIDs...)

	// Edges first: every edge touching a removed task goes, including edges
	// where the target task is itself the dependent.
	if err := uc.depRepo.DeleteEdgesTouching(ctx, input.OwnerID, doomed); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEdgesTouching: %v", err)
		return task.DeleteTaskOutput{}, err
	}
	if err := uc.repo.DeleteTasks(ctx, input.OwnerID, doomed); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTasks: %v", err)
		return task.DeleteTaskOutput{}, err
	}

	message := fmt.Sprintf("Task %q deleted", existing.Title)
	if len(dependentIDs) > 0 {
		message = fmt.Sprintf("Task %q deleted along with %d dependent task(s)", existing.Title, len(dependentIDs))
	}
	uc.sink.Emit(ctx, model.Event{
		Name:    model.EventTaskDeleted,
		OwnerID: input.OwnerID,
		Message: message,
		Data: map[string]any{
			"task_id":         existing.ID,
			"title":           existing.Title,
			"cascade_deleted": len(dependentIDs),
		},
		OccurredAt: time.Now().UTC(),
	})

	return task.DeleteTaskOutput{CascadeDeleted: len(dependentIDs)}, nil
}

func uniqueDependentIDs(edges []model.Dependency) []string {
	seen := make(map[string]struct{}, len(edges))
	var ids []string
	for _, e := range edges {
		if _, ok := seen[e.DependentTaskID]; ok {
			continue
		}
		seen[e.DependentTaskID] = struct{}{}
		ids = append(ids, e.DependentTaskID)
	}
	return ids
}
