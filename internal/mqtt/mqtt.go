// Package mqtt publishes appliance state changes to a broker, with an
// abstraction for testing and a noop for installs without a broker.
package mqtt

import (
	"encoding/json"
	"time"
)

// DefaultTopic is the topic state events are published to unless
// overridden in config.
const DefaultTopic = "home/ac/state"

// StateEvent describes the result of one actuation, manual or scheduled.
type StateEvent struct {
	On      bool      `json:"on"`      // sensed state after the drive
	Outcome string    `json:"outcome"` // human-readable actuation outcome
	Trigger string    `json:"trigger"` // "manual" or "schedule"
	At      time.Time `json:"at"`
}

// Publisher publishes state events to MQTT.
type Publisher interface {
	// Publish sends a state event to the broker. A failure must not
	// crash or block the control path; callers log and move on.
	Publish(ev StateEvent) error

	// Close disconnects from the broker.
	Close() error
}

// FormatPayload renders the JSON wire form of a state event.
func FormatPayload(ev StateEvent) ([]byte, error) {
	return json.Marshal(ev)
}
