package models

// TimeUnknown is the timestamp sentinel used when the clock source has no
// wall time yet.
const TimeUnknown = "time unknown"

// JournalEntry is one immutable audit record: a wall-clock timestamp (or
// the TimeUnknown sentinel) plus a free-text message.
type JournalEntry struct {
	ID      string `json:"id"`
	At      string `json:"at"` // "HH:MM" or TimeUnknown
	Message string `json:"message"`
}

// String renders the entry the way it appears in textual listings.
func (e JournalEntry) String() string {
	return "[" + e.At + "] " + e.Message
}
