package usecase

import (
	depRepo "taskboard-api/internal/dependency/repository"
	"taskboard-api/internal/notification"
	"taskboard-api/internal/task/repository"
	"taskboard-api/pkg/gcalendar"
	"taskboard-api/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo    repository.Repository
	depRepo depRepo.Repository
	sink    notification.Sink

	// calendar is optional; nil disables deadline mirroring.
	calendar   gcalendar.EventMirror
	calendarID string

	l log.Logger
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, depRepo depRepo.Repository, sink notification.Sink, calendar gcalendar.EventMirror, calendarID string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		depRepo:    depRepo,
		sink:       sink,
		calendar:   calendar,
		calendarID: calendarID,
		l:          l,
	}
}
