package usecase

import (
	"workspace-gateway/internal/notes/repository"
	pkgLog "workspace-gateway/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.NotesRepository
}

// New creates a new notes UseCase instance.
func New(l pkgLog.Logger, repo repository.NotesRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
