package models

import "fmt"

// Actuation results.
const (
	ResultAlready   = "ALREADY"   // appliance was already in the desired state
	ResultConverged = "CONVERGED" // reached the desired state after one or more pulses
	ResultFailed    = "FAILED"    // retry budget exhausted without convergence
)

// ActuationOutcome reports how a drive toward a desired state ended.
// It is returned to the caller and journaled, never persisted. A FAILED
// outcome is not an error: the appliance is left in whatever state it
// physically reached.
type ActuationOutcome struct {
	Result   string `json:"result"` // ALREADY | CONVERGED | FAILED
	Desired  bool   `json:"desired"`
	Attempts int    `json:"attempts,omitempty"` // button pulses issued
}

// String renders a human-readable description used in journal entries
// and response bodies.
func (o ActuationOutcome) String() string {
	state := "off"
	if o.Desired {
		state = "on"
	}
	switch o.Result {
	case ResultAlready:
		return "already " + state
	case ResultConverged:
		return fmt.Sprintf("turned %s after %d attempt(s)", state, o.Attempts)
	default:
		return fmt.Sprintf("failed to turn %s after %d attempts", state, o.Attempts)
	}
}
