package models

import (
	"errors"
	"fmt"
)

// Domain errors surfaced to the control surface.
var (
	// ErrNotFound means the referenced schedule slot does not currently exist.
	ErrNotFound = errors.New("schedule not found")

	// ErrServiceUnavailable means a time resync was requested but no time
	// service is configured.
	ErrServiceUnavailable = errors.New("time service unavailable")
)

// ValidationError rejects malformed schedule parameters before any
// mutation takes place. Field names the offending parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
