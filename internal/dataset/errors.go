package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTimestamp is returned when a start_time cell cannot be parsed.
	// The whole load fails; rows are never dropped or coerced.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrMalformedValue is returned when a numeric cell cannot be parsed.
	ErrMalformedValue = errors.New("malformed value")

	// ErrMissingColumn is returned when a required column is not in the header.
	ErrMissingColumn = errors.New("missing required column")
)

// MalformedTimestampError identifies the offending row of a failed load.
type MalformedTimestampError struct {
	Row   int // 1-based data row, header excluded
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("%v: row %d: %q", ErrMalformedTimestamp, e.Row, e.Value)
}

// Unwrap lets errors.Is match ErrMalformedTimestamp.
func (e *MalformedTimestampError) Unwrap() error {
	return ErrMalformedTimestamp
}
