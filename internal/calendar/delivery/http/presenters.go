package http

import "workspace-gateway/internal/calendar"

// --- Request DTOs ---

type readEventsReq struct {
	CalendarID string `form:"calendar_id"`
	TimeMin    string `form:"time_min"`
	TimeMax    string `form:"time_max"`
}

func (r readEventsReq) toInput() calendar.ReadEventsInput {
	return calendar.ReadEventsInput{
		CalendarID: r.CalendarID,
		TimeMin:    r.TimeMin,
		TimeMax:    r.TimeMax,
	}
}

// ---

type createEventReq struct {
	CalendarID  string   `json:"calendar_id"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Attendees   []string `json:"attendees"`
}

func (r createEventReq) validate() error {
	if r.Summary == "" || r.StartTime == "" || r.EndTime == "" {
		return errMissingEventFields
	}
	return nil
}

func (r createEventReq) toInput() calendar.CreateEventInput {
	return calendar.CreateEventInput{
		CalendarID:  r.CalendarID,
		Summary:     r.Summary,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Attendees:   r.Attendees,
	}
}

// ---

type editEventReq struct {
	CalendarID  string   `json:"calendar_id"`
	EventID     string   `json:"event_id"`
	Summary     *string  `json:"summary"`
	Description *string  `json:"description"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Attendees   []string `json:"attendees"`
}

func (r editEventReq) validate() error {
	if r.EventID == "" {
		return errEventIDRequired
	}
	return nil
}

func (r editEventReq) toInput() calendar.EditEventInput {
	return calendar.EditEventInput{
		CalendarID:  r.CalendarID,
		EventID:     r.EventID,
		Summary:     r.Summary,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Attendees:   r.Attendees,
	}
}

// ---

type deleteEventReq struct {
	CalendarID string `form:"calendar_id"`
	EventID    string `form:"event_id"`
}

func (r deleteEventReq) validate() error {
	if r.EventID == "" {
		return errEventIDRequired
	}
	return nil
}

func (r deleteEventReq) toInput() calendar.DeleteEventInput {
	return calendar.DeleteEventInput{
		CalendarID: r.CalendarID,
		EventID:    r.EventID,
	}
}
