package usecase

import (
	"context"

	"taskboard-api/internal/task"
	repo "taskboard-api/internal/task/repository"
	"taskboard-api/pkg/gcalendar"
)

// Create persists a new task and mirrors its deadline to the calendar when
// one is configured. The mirror is best-effort and never fails the create.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if !input.Priority.IsValid() {
		return task.CreateTaskOutput{}, task.ErrInvalidPriority
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline.UTC(),
		Priority:    input.Priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	if uc.calendar != nil {
		if _, mirrorErr := uc.calendar.MirrorDeadline(ctx, gcalendar.MirrorEventRequest{
			CalendarID:  uc.calendarID,
			Title:       created.Title,
			Description: created.Description,
			Deadline:    created.Deadline,
		}); mirrorErr != nil {
			uc.l.Warnf(ctx, "uc.Create calendar mirror failed for task %s: %v", created.ID, mirrorErr)
		}
	}

	return task.CreateTaskOutput{Task: created}, nil
}
