package domain

import "errors"

// Sentinel errors shared by repositories, services and the HTTP layer.
var (
	// ErrNotFound is returned when a requested event or question does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a request fails validation. Callers wrap it with the reason.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict is returned when a write cannot complete because of competing data, e.g. no free slug.
	ErrConflict = errors.New("conflict")
)
