package http

import (
	"github.com/gin-gonic/gin"

	"workspace-gateway/internal/notes"
	"workspace-gateway/pkg/log"
)

// Handler is the public interface for the notes HTTP delivery layer.
type Handler interface {
	ListDatabases(c *gin.Context)
	ListPages(c *gin.Context)
	PageText(c *gin.Context)
	DatabasePages(c *gin.Context)
	DatabaseSchema(c *gin.Context)
	UpdateEntry(c *gin.Context)
	CreateEntry(c *gin.Context)
	QueryDatabase(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc notes.UseCase
}

// New creates a new HTTP handler for the notes domain.
func New(l log.Logger, uc notes.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
