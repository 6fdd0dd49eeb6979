package gcalendar

// ListEventsRequest is the input for listing Google Calendar events.
// Times are RFC3339 strings passed through to the provider unparsed.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    string
	TimeMax    string // optional
	MaxResults int64
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   string // RFC3339
	EndTime     string // RFC3339
	Attendees   []string
}

// UpdateEventRequest carries the mutable fields of an event. Nil pointers
// (and a nil attendee slice) leave the existing value untouched.
type UpdateEventRequest struct {
	CalendarID  string
	EventID     string
	Summary     *string
	Description *string
	StartTime   *string
	EndTime     *string
	Attendees   []string
}
