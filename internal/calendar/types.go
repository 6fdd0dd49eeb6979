package calendar

// ReadEventsInput lists events in a time range. Times are RFC3339 strings;
// an empty TimeMin defaults to now.
type ReadEventsInput struct {
	CalendarID string
	TimeMin    string
	TimeMax    string
}

// CreateEventInput creates one event.
type CreateEventInput struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   string
	EndTime     string
	Attendees   []string
}

// EditEventInput patches an event's mutable fields. Nil pointers (and a nil
// attendee slice) leave the existing value untouched.
type EditEventInput struct {
	CalendarID  string
	EventID     string
	Summary     *string
	Description *string
	StartTime   *string
	EndTime     *string
	Attendees   []string
}

// DeleteEventInput deletes one event.
type DeleteEventInput struct {
	CalendarID string
	EventID    string
}
