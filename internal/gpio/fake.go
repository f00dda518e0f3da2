package gpio

import (
	"errors"
	"time"
)

// FakePort is a test double that returns scripted sense levels and records
// button pulses.
type FakePort struct {
	// Levels contains scripted sense readings. Each Sense call consumes
	// the next level; once exhausted, the last level repeats.
	Levels []bool

	// Pulses records the duration of every Pulse call.
	Pulses []time.Duration

	// SenseErr, if set, is returned by Sense.
	SenseErr error

	// PulseErr, if set, is returned by Pulse.
	PulseErr error

	// Closed tracks whether Close was called.
	Closed bool

	// SenseCalls counts every Sense call.
	SenseCalls int

	index int
}

// NewFakePort creates a FakePort with the given scripted sense levels.
func NewFakePort(levels ...bool) *FakePort {
	return &FakePort{Levels: levels}
}

// Sense returns the next scripted level.
func (f *FakePort) Sense() (bool, error) {
	f.SenseCalls++
	if f.SenseErr != nil {
		return false, f.SenseErr
	}
	if len(f.Levels) == 0 {
		return false, errors.New("no levels configured")
	}
	level := f.Levels[f.index]
	if f.index < len(f.Levels)-1 {
		f.index++
	}
	return level, nil
}

// Pulse records the press duration.
func (f *FakePort) Pulse(d time.Duration) error {
	if f.PulseErr != nil {
		return f.PulseErr
	}
	f.Pulses = append(f.Pulses, d)
	return nil
}

// Close marks the port as closed.
func (f *FakePort) Close() error {
	f.Closed = true
	return nil
}

// Script replaces the remaining scripted levels and rewinds.
func (f *FakePort) Script(levels ...bool) {
	f.Levels = levels
	f.index = 0
}
