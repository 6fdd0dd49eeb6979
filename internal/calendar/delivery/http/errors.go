package http

import "errors"

// Validation errors surfaced as 400 responses, before any provider call.
var (
	errMissingEventFields = errors.New("Missing required event fields.")
	errEventIDRequired    = errors.New("Event ID is required.")
)
