package models

import "fmt"

// WallTime is a time of day at minute resolution, the only precision the
// scheduler cares about.
type WallTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// String renders as "HH:MM".
func (t WallTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// StatusSnapshot is the full picture returned by the status endpoint:
// the live sensed state, the current wall time (if known) and the
// configured schedules.
type StatusSnapshot struct {
	On        bool           `json:"on"`
	Time      string         `json:"time,omitempty"` // "HH:MM", empty when unknown
	TimeKnown bool           `json:"time_known"`
	Schedules []ScheduleSlot `json:"schedules"`
}
