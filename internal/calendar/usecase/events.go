package usecase

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"workspace-gateway/internal/calendar"
	"workspace-gateway/pkg/gcalendar"
)

// ReadEvents lists every event in the requested range. The client collects
// all pages internally; the result is one ordered slice.
func (uc *implUseCase) ReadEvents(ctx context.Context, input calendar.ReadEventsInput) ([]*gcal.Event, error) {
	if uc.client == nil {
		return nil, calendar.ErrNotConfigured
	}

	timeMin := input.TimeMin
	if timeMin == "" {
		timeMin = time.Now().UTC().Format(time.RFC3339)
	}

	events, err := uc.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: input.CalendarID,
		TimeMin:    timeMin,
		TimeMax:    input.TimeMax,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ReadEvents: list failed: %v", err)
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}

// CreateEvent creates one event.
func (uc *implUseCase) CreateEvent(ctx context.Context, input calendar.CreateEventInput) (*gcal.Event, error) {
	if uc.client == nil {
		return nil, calendar.ErrNotConfigured
	}

	created, err := uc.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  input.CalendarID,
		Summary:     input.Summary,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Attendees:   input.Attendees,
	})
	if err != nil {
		uc.l.Errorf(ctx, "CreateEvent: create failed: %v", err)
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

// EditEvent overwrites the provided fields of an existing event.
func (uc *implUseCase) EditEvent(ctx context.Context, input calendar.EditEventInput) (*gcal.Event, error) {
	if uc.client == nil {
		return nil, calendar.ErrNotConfigured
	}

	updated, err := uc.client.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
		CalendarID:  input.CalendarID,
		EventID:     input.EventID,
		Summary:     input.Summary,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Attendees:   input.Attendees,
	})
	if err != nil {
		uc.l.Errorf(ctx, "EditEvent: update failed for %s: %v", input.EventID, err)
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return updated, nil
}

// DeleteEvent deletes one event.
func (uc *implUseCase) DeleteEvent(ctx context.Context, input calendar.DeleteEventInput) error {
	if uc.client == nil {
		return calendar.ErrNotConfigured
	}

	if err := uc.client.DeleteEvent(ctx, input.CalendarID, input.EventID); err != nil {
		uc.l.Errorf(ctx, "DeleteEvent: delete failed for %s: %v", input.EventID, err)
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
