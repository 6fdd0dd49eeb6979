package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	calendarHTTP "workspace-gateway/internal/calendar/delivery/http"
	notesHTTP "workspace-gateway/internal/notes/delivery/http"
	"workspace-gateway/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	calendarHandler calendarHTTP.Handler
	notesHandler    notesHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	CalendarHandler calendarHTTP.Handler
	NotesHandler    notesHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		calendarHandler: cfg.CalendarHandler,
		notesHandler:    cfg.NotesHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendarHandler == nil {
		return errors.New("calendar handler is required")
	}
	if srv.notesHandler == nil {
		return errors.New("notes handler is required")
	}
	return nil
}
