package models

// SlotCount is the fixed size of the schedule table. Slot ids are the
// array indices, so valid ids are [0, SlotCount).
const SlotCount = 16

// ScheduleSlot is one entry of the fixed schedule table. A slot with
// Valid=false carries no meaningful hour/minute/on values.
type ScheduleSlot struct {
	ID     int  `json:"id"`
	Hour   int  `json:"hour"`   // 0..23
	Minute int  `json:"minute"` // 0..59
	On     bool `json:"on"`     // desired appliance state when fired

	// Valid is persisted; only valid slots participate in scheduling
	// and listing.
	Valid bool `json:"-"`

	// Executed is transient: set when the slot fires, cleared once the
	// wall-clock minute moves away, and always false after a restart.
	Executed bool `json:"-"`
}

// Matches reports whether the slot's trigger time equals the given wall time.
func (s ScheduleSlot) Matches(t WallTime) bool {
	return s.Hour == t.Hour && s.Minute == t.Minute
}
