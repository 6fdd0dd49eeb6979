package http

import (
	"github.com/gin-gonic/gin"

	"workspace-gateway/pkg/response"
)

// ReadEvents godoc
// @Summary     List calendar events
// @Description Lists events in a time range. Pages are collected internally and returned as one array.
// @Tags        Calendar
// @Produce     json
// @Param       calendar_id query string false "Calendar ID (default: primary)"
// @Param       time_min    query string false "RFC3339 lower bound (default: now)"
// @Param       time_max    query string false "RFC3339 upper bound"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Upstream provider error"
// @Router      /read_events [GET]
func (h *handler) ReadEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReadEventsReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	events, err := h.uc.ReadEvents(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ReadEvents: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, events)
}

// CreateEvent godoc
// @Summary     Create a calendar event
// @Description Creates one event. summary, start_time and end_time are required.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createEventReq true "Event data"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Missing required event fields"
// @Failure     500 {object} response.Resp "Upstream provider error"
// @Router      /create_event [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateEventReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	created, err := h.uc.CreateEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, created)
}

// EditEvent godoc
// @Summary     Edit a calendar event
// @Description Overwrites the provided mutable fields of an existing event.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body editEventReq true "Fields to overwrite"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Event ID is required"
// @Failure     500 {object} response.Resp "Upstream provider error"
// @Router      /edit_event [PUT]
func (h *handler) EditEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditEventReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	updated, err := h.uc.EditEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.EditEvent: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, updated)
}

// DeleteEvent godoc
// @Summary     Delete a calendar event
// @Description Deletes one event by ID.
// @Tags        Calendar
// @Produce     json
// @Param       calendar_id query string false "Calendar ID (default: primary)"
// @Param       event_id    query string true  "Event ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Event ID is required"
// @Failure     500 {object} response.Resp "Upstream provider error"
// @Router      /delete_event [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteEventReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.DeleteEvent(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"status":  "success",
		"message": "Event deleted successfully",
	})
}
