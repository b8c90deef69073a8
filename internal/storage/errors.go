package storage

import "errors"

// Storage errors shared by all record sources.
var (
	// ErrNotFound is returned when no dataset exists for a city.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when a sink already holds trips for a city.
	// Sinks are append-only and refuse to load a city twice.
	ErrDuplicateKey = errors.New("duplicate key: city already loaded")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
