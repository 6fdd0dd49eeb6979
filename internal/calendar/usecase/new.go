package usecase

import (
	"workspace-gateway/internal/calendar"
	pkgLog "workspace-gateway/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	client calendar.Client
}

// New creates a new calendar UseCase instance. client may be nil when Google
// credentials are not configured; operations then fail with
// calendar.ErrNotConfigured.
func New(l pkgLog.Logger, client calendar.Client) *implUseCase {
	return &implUseCase{
		l:      l,
		client: client,
	}
}
