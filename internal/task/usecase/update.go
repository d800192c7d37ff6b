package usecase

import (
	"context"
	"time"

	"taskboard-api/internal/dependency"
	depRepo "taskboard-api/internal/dependency/repository"
	"taskboard-api/internal/model"
	"taskboard-api/internal/task"
	repo "taskboard-api/internal/task/repository"
	"taskboard-api/pkg/deadline"
)

// Update modifies a task. A deadline change passes the mutation guard first:
// the new instant is checked against every edge the task participates in, and
// the whole update is rejected on the first violation. The guard never
// adjusts other tasks' deadlines to compensate.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	newDeadline, err := uc.resolveDeadline(existing, input)
	if err != nil {
		return task.UpdateTaskOutput{}, err
	}

	if !newDeadline.Equal(existing.Deadline) {
		if err := uc.guardDeadline(ctx, existing, newDeadline); err != nil {
			return task.UpdateTaskOutput{}, err
		}
	}

	priority := existing.Priority
	if input.Priority != "" {
		if !input.Priority.IsValid() {
			return task.UpdateTaskOutput{}, task.ErrInvalidPriority
		}
		priority = input.Priority
	}

	completed := existing.Completed
	if input.Completed != nil {
		completed = *input.Completed
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          input.ID,
		OwnerID:     input.OwnerID,
		Title:       uc.coalesce(input.Title, existing.Title),
		Description: uc.coalesce(input.Description, existing.Description),
		Deadline:    newDeadline,
		Priority:    priority,
		Completed:   completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	return task.UpdateTaskOutput{Task: updated}, nil
}

// resolveDeadline combines the incoming date/time strings with the stored
// deadline: a client may change only one half, so the missing half comes from
// the stored instant.
func (uc *implUseCase) resolveDeadline(existing model.Task, input task.UpdateTaskInput) (time.Time, error) {
	if input.Date == "" && input.Time == "" {
		return existing.Deadline, nil
	}

	dateStr := input.Date
	if dateStr == "" {
		dateStr = deadline.FormatDate(existing.Deadline)
	}
	timeStr := input.Time
	if timeStr == "" {
		timeStr = deadline.FormatTime(existing.Deadline)
	}

	parsed, err := deadline.Parse(dateStr, timeStr)
	if err != nil {
		return time.Time{}, task.ErrInvalidDeadline
	}
	return parsed, nil
}

// guardDeadline re-validates a proposed deadline against both edge
// directions before anything is written.
func (uc *implUseCase) guardDeadline(ctx context.Context, t model.Task, newDeadline time.Time) error {
	edges, err := uc.depRepo.ListEdges(ctx, depRepo.ListEdgesOptions{OwnerID: t.OwnerID, TaskID: t.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.guardDeadline ListEdges: %v", err)
		return err
	}
	if len(edges) == 0 {
		return nil
	}

	idSet := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.PrerequisiteTaskID == t.ID {
			idSet[e.DependentTaskID] = struct{}{}
		}
		if e.DependentTaskID == t.ID {
			idSet[e.PrerequisiteTaskID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	others, err := uc.repo.GetTasksByIDs(ctx, t.OwnerID, ids)
	if err != nil {
		uc.l.Errorf(ctx, "uc.guardDeadline GetTasksByIDs: %v", err)
		return err
	}
	byID := make(map[string]model.Task, len(others))
	for _, other := range others {
		byID[other.ID] = other
	}

	proposed := t
	proposed.Deadline = newDeadline

	for _, e := range edges {
		// Tasks depending on this one: their deadlines must stay ≤ the new one.
		if e.PrerequisiteTaskID == t.ID {
			dep, ok := byID[e.DependentTaskID]
			if ok && dep.Deadline.After(newDeadline) {
				return &dependency.DeadlineViolationError{
					DependentTask:    dep,
					PrerequisiteTask: proposed,
				}
			}
		}
		// Tasks this one depends on: the new deadline must stay ≤ theirs.
		if e.DependentTaskID == t.ID {
			pre, ok := byID[e.PrerequisiteTaskID]
			if ok && newDeadline.After(pre.Deadline) {
				return &dependency.DeadlineViolationError{
					DependentTask:    proposed,
					PrerequisiteTask: pre,
				}
			}
		}
	}
	return nil
}

// coalesce returns the first non-empty string, for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
