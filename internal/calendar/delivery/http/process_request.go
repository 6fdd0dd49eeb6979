package http

import (
	"github.com/gin-gonic/gin"
)

// processReadEventsReq binds the list query parameters.
func (h *handler) processReadEventsReq(c *gin.Context) (readEventsReq, error) {
	var req readEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateEventReq binds and validates the create event body.
func (h *handler) processCreateEventReq(c *gin.Context) (createEventReq, error) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processEditEventReq binds and validates the edit event body.
func (h *handler) processEditEventReq(c *gin.Context) (editEventReq, error) {
	var req editEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDeleteEventReq binds and validates the delete query parameters.
func (h *handler) processDeleteEventReq(c *gin.Context) (deleteEventReq, error) {
	var req deleteEventReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
