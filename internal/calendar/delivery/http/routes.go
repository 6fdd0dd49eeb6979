package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the calendar endpoints onto the router. Paths keep the
// original flat layout rather than a versioned group.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.GET("/read_events", h.ReadEvents)
	r.POST("/create_event", h.CreateEvent)
	r.PUT("/edit_event", h.EditEvent)
	r.DELETE("/delete_event", h.DeleteEvent)
}
