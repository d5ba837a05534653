package service

import "errors"

// Sentinel errors returned by the entity services. Handlers match on
// these with errors.Is to choose between a 404 page, a redirect with a
// notice and a hard failure.
var (
	// ErrNotFound means the target row does not exist (or the route key
	// did not match the submitted record's own key).
	ErrNotFound = errors.New("record not found")

	// ErrConflict means the row was modified by someone else between the
	// form being rendered and the save. It is never retried.
	ErrConflict = errors.New("record was modified concurrently")

	// ErrEditBlocked means the record belongs to a past year and may not
	// be changed.
	ErrEditBlocked = errors.New("records from previous years cannot be edited")

	// ErrMissingReference means a fee computation could not resolve the
	// fee structure or membership type it depends on.
	ErrMissingReference = errors.New("missing reference data")
)
