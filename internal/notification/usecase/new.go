package usecase

import (
	"taskboard-api/internal/notification/repository"
	"taskboard-api/pkg/log"
)

// implUseCase is the private implementation of notification.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new notification UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
