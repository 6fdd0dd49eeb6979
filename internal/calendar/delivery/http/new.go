package http

import (
	"github.com/gin-gonic/gin"

	"workspace-gateway/internal/calendar"
	"workspace-gateway/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	ReadEvents(c *gin.Context)
	CreateEvent(c *gin.Context)
	EditEvent(c *gin.Context)
	DeleteEvent(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
