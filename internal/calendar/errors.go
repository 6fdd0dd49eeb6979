package calendar

import "errors"

// ErrNotConfigured is returned when Google credentials were not available at
// startup. The routes stay registered so the rest of the façade keeps
// working.
var ErrNotConfigured = errors.New("google calendar is not configured")
