package gcalendar

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	defaultMaxResults = 2500
)

// Client wraps the Google Calendar API service. Event payloads are passed
// through as the provider returns them; only the fields this service writes
// (summary, description, start, end, attendees) are ever constructed.
type Client struct {
	service *calendar.Service
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListEvents lists every event in the requested range, following
// nextPageToken until the provider stops returning one. Any page error
// aborts the whole listing; partial results are discarded. No page cap is
// enforced, so a misbehaving upstream can iterate without bound.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]*calendar.Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	var events []*calendar.Event
	pageToken := ""
	for {
		call := c.service.Events.List(calendarID).
			TimeMin(req.TimeMin).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(maxResults).
			Context(ctx)
		if req.TimeMax != "" {
			call = call.TimeMax(req.TimeMax)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list calendar events: %w", err)
		}
		events = append(events, page.Items...)

		// Calendar-style pagination: done when the token is absent.
		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return events, nil
}

// CreateEvent creates a new Google Calendar event and returns the created
// event as the provider sees it.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*calendar.Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       &calendar.EventDateTime{DateTime: req.StartTime},
		End:         &calendar.EventDateTime{DateTime: req.EndTime},
		Attendees:   buildAttendees(req.Attendees),
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created, nil
}

// UpdateEvent fetches the event, overwrites the provided fields, and writes
// it back.
func (c *Client) UpdateEvent(ctx context.Context, req UpdateEventRequest) (*calendar.Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	event, err := c.service.Events.Get(calendarID, req.EventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve calendar event: %w", err)
	}

	if req.Summary != nil {
		event.Summary = *req.Summary
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartTime != nil {
		event.Start = &calendar.EventDateTime{DateTime: *req.StartTime}
	}
	if req.EndTime != nil {
		event.End = &calendar.EventDateTime{DateTime: *req.EndTime}
	}
	if req.Attendees != nil {
		event.Attendees = buildAttendees(req.Attendees)
	}

	updated, err := c.service.Events.Update(calendarID, req.EventID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}
	return updated, nil
}

// DeleteEvent deletes one event.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if calendarID == "" {
		calendarID = defaultCalendarID
	}
	if err := c.service.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

func buildAttendees(emails []string) []*calendar.EventAttendee {
	if len(emails) == 0 {
		return nil
	}
	attendees := make([]*calendar.EventAttendee, 0, len(emails))
	for _, email := range emails {
		attendees = append(attendees, &calendar.EventAttendee{Email: email})
	}
	return attendees
}
