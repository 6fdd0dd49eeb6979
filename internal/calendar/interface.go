package calendar

import (
	"context"

	gcal "google.golang.org/api/calendar/v3"

	"workspace-gateway/pkg/gcalendar"
)

// UseCase is the interface for calendar operations. Event payloads are the
// provider's own records, passed through untouched.
type UseCase interface {
	ReadEvents(ctx context.Context, input ReadEventsInput) ([]*gcal.Event, error)
	CreateEvent(ctx context.Context, input CreateEventInput) (*gcal.Event, error)
	EditEvent(ctx context.Context, input EditEventInput) (*gcal.Event, error)
	DeleteEvent(ctx context.Context, input DeleteEventInput) error
}

// Client is the subset of the Google Calendar client the usecase needs.
type Client interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]*gcal.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcal.Event, error)
	UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcal.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
