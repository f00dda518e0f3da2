//go:build linux

package gpio

import (
	"fmt"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// RealPort drives actual hardware through the Linux GPIO character device.
type RealPort struct {
	chip   *gpiocdev.Chip
	button *gpiocdev.Line
	sense  *gpiocdev.Line
}

// NewRealPort opens the chip and requests the button line as output
// (initially low, button released) and the sense line as input.
func NewRealPort(chipName string, buttonPin, sensePin int) (*RealPort, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %q: %w", chipName, err)
	}

	button, err := chip.RequestLine(buttonPin, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request button pin %d: %w", buttonPin, err)
	}

	// Pull-down matches the board's boot default so a floating LED wire
	// reads as "off" rather than noise.
	sense, err := chip.RequestLine(sensePin, gpiocdev.AsInput, gpiocdev.WithPullDown)
	if err != nil {
		button.Close()
		chip.Close()
		return nil, fmt.Errorf("request sense pin %d: %w", sensePin, err)
	}

	return &RealPort{chip: chip, button: button, sense: sense}, nil
}

// Sense reads the LED level. High = lit = appliance on.
func (p *RealPort) Sense() (bool, error) {
	v, err := p.sense.Value()
	if err != nil {
		return false, fmt.Errorf("read sense pin: %w", err)
	}
	return v == 1, nil
}

// Pulse holds the button line high for d, releases it, then waits a short
// release delay before returning.
func (p *RealPort) Pulse(d time.Duration) error {
	if err := p.button.SetValue(1); err != nil {
		return fmt.Errorf("press button: %w", err)
	}
	time.Sleep(d)
	if err := p.button.SetValue(0); err != nil {
		return fmt.Errorf("release button: %w", err)
	}
	time.Sleep(releaseDelay)
	return nil
}

// Close releases the button (output low), reconfigures both lines back to
// inputs and closes the chip.
func (p *RealPort) Close() error {
	var errs []error

	if p.button != nil {
		if err := p.button.SetValue(0); err != nil {
			errs = append(errs, fmt.Errorf("release button: %w", err))
		}
		if err := p.button.Reconfigure(gpiocdev.AsInput); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure button pin: %w", err))
		}
		if err := p.button.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close button pin: %w", err))
		}
	}
	if p.sense != nil {
		if err := p.sense.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close sense pin: %w", err))
		}
	}
	if p.chip != nil {
		if err := p.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
