// Package device implements the two appliance-facing components: the
// debounced state sensor and the retrying actuator. Both sit directly on
// the gpio.Port and carry the timing knobs supplied at startup.
package device

import (
	"time"

	"github.com/shifty-eyed/esp-ac-control/internal/gpio"
)

// Sensor default tuning. The status LED may blink or be PWM-driven, so the
// read is deliberately biased toward detecting "on": any lit sample wins.
const (
	DefaultSamples        = 8
	DefaultSampleInterval = 5 * time.Millisecond
)

// Sensor derives the appliance state from the LED sense line with a
// debounced, on-biased read.
type Sensor struct {
	port     gpio.Port
	samples  int
	interval time.Duration
}

// NewSensor builds a sensor over the port. Non-positive samples or a
// negative interval fall back to the defaults.
func NewSensor(port gpio.Port, samples int, interval time.Duration) *Sensor {
	if samples <= 0 {
		samples = DefaultSamples
	}
	if interval < 0 {
		interval = DefaultSampleInterval
	}
	return &Sensor{port: port, samples: samples, interval: interval}
}

// Read samples the sense line up to the configured count, returning true
// as soon as any sample reads lit and false only when every sample reads
// dark. Read errors count as dark samples; Read itself never fails.
func (s *Sensor) Read() bool {
	for i := 0; i < s.samples; i++ {
		if lit, err := s.port.Sense(); err == nil && lit {
			return true
		}
		time.Sleep(s.interval)
	}
	return false
}
