// Package gpio is the digital I/O adapter for the appliance: one input
// line sensing the status LED and one output line driving the button
// transistor. The real implementation uses the Linux GPIO character
// device; the fake implementation allows testing without hardware.
package gpio

import "time"

// Port exposes the two physical lines wired to the appliance.
type Port interface {
	// Sense returns the raw level of the LED sense input:
	// true when the LED is lit (appliance on).
	Sense() (bool, error)

	// Pulse emulates a momentary button press: drives the output high
	// for d, then releases it.
	Pulse(d time.Duration) error

	// Close releases GPIO resources.
	Close() error
}

// Default pin assignment (BCM numbering): the button is driven through an
// NPN transistor base, the sense pin reads the status LED level.
const (
	PinButton = 25
	PinSense  = 32
)

// releaseDelay keeps the output low for a moment after a pulse so
// back-to-back presses are always seen as distinct by the appliance.
const releaseDelay = 100 * time.Millisecond
