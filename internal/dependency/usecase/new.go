package usecase

import (
	"taskboard-api/internal/dependency/repository"
	"taskboard-api/internal/notification"
	taskRepo "taskboard-api/internal/task/repository"
	"taskboard-api/pkg/log"
)

// implUseCase is the private implementation of dependency.UseCase.
type implUseCase struct {
	repo     repository.Repository
	taskRepo taskRepo.Repository
	sink     notification.Sink
	l        log.Logger
}

// New creates a new dependency UseCase implementation.
func New(repo repository.Repository, taskRepo taskRepo.Repository, sink notification.Sink, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		taskRepo: taskRepo,
		sink:     sink,
		l:        l,
	}
}
