//go:build !linux

package gpio

import (
	"errors"
	"time"
)

// RealPort is not available on non-Linux platforms.
type RealPort struct{}

// NewRealPort returns an error on non-Linux platforms.
func NewRealPort(chipName string, buttonPin, sensePin int) (*RealPort, error) {
	return nil, errors.New("gpio: not supported on this platform (requires Linux)")
}

// Sense is not implemented on non-Linux platforms.
func (p *RealPort) Sense() (bool, error) {
	return false, errors.New("gpio: not supported")
}

// Pulse is not implemented on non-Linux platforms.
func (p *RealPort) Pulse(d time.Duration) error {
	return errors.New("gpio: not supported")
}

// Close is not implemented on non-Linux platforms.
func (p *RealPort) Close() error {
	return nil
}
