package http

import "errors"

// Validation errors surfaced as 400 responses, before any provider call.
var (
	errPageIDRequired       = errors.New("Page ID is required")
	errDatabaseIDRequired   = errors.New("Database ID is required")
	errUpdateFieldsRequired = errors.New("Page ID and updated properties are required")
	errCreateFieldsRequired = errors.New("Database ID and properties are required")
)
