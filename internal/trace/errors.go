package trace

import (
	"fmt"

	"cuelang.org/go/cue/token"
)

// ErrorCode categorizes trace decoding errors.
type ErrorCode string

const (
	// ErrCodeOutOfRange indicates a line is shorter than its dialect requires.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"

	// ErrCodeMarkerNotFound indicates a line has no cycle marker.
	ErrCodeMarkerNotFound ErrorCode = "MARKER_NOT_FOUND"

	// ErrCodeSchema indicates a dialect table failed validation.
	ErrCodeSchema ErrorCode = "SCHEMA"
)

// OutOfRangeError is returned by Parse when a line is too short for the
// spans of its dialect.
type OutOfRangeError struct {
	Dialect string
	Need    int // Minimum line length in characters
	Got     int // Actual line length in characters
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %s line has %d characters, need at least %d",
		ErrCodeOutOfRange, e.Dialect, e.Got, e.Need)
}

// MarkerNotFoundError is returned by Parse when a line lacks the cycle marker.
type MarkerNotFoundError struct {
	Dialect string
	Marker  string
}

func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s line has no %q marker", ErrCodeMarkerNotFound, e.Dialect, e.Marker)
}

// SchemaError reports an invalid dialect table.
// Pos is set when the problem was found by CUE evaluation.
type SchemaError struct {
	Dialect string
	Message string
	Pos     token.Pos
}

func (e *SchemaError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), ErrCodeSchema, e.Message)
	}
	if e.Dialect != "" {
		return fmt.Sprintf("%s: dialect %s: %s", ErrCodeSchema, e.Dialect, e.Message)
	}
	return fmt.Sprintf("%s: %s", ErrCodeSchema, e.Message)
}
