package device

import (
	"sync"
	"time"

	"github.com/shifty-eyed/esp-ac-control/internal/gpio"
	"github.com/shifty-eyed/esp-ac-control/internal/logger"
	"github.com/shifty-eyed/esp-ac-control/internal/models"
)

// Timings are the actuation knobs, all supplied at startup.
type Timings struct {
	Press       time.Duration // button hold duration
	Settle      time.Duration // wait after a pulse before re-reading
	Cooldown    time.Duration // extra wait between failed attempts
	MaxAttempts int
}

// DefaultTimings match the appliance the service was built for.
func DefaultTimings() Timings {
	return Timings{
		Press:       300 * time.Millisecond,
		Settle:      500 * time.Millisecond,
		Cooldown:    1500 * time.Millisecond,
		MaxAttempts: 5,
	}
}

// Actuator drives the appliance toward a desired state. The appliance has
// no command protocol, only a momentary contact and a derived sensor, so
// every pulse is verified empirically and retried with a cooldown between
// attempts rather than hammered at a fixed rate.
type Actuator struct {
	port   gpio.Port
	sensor *Sensor
	t      Timings
	log    *logger.Logger

	// mu serializes drives: there is one physical appliance and
	// concurrent pulses would race on the same sensor/actuator pair.
	mu sync.Mutex
}

// NewActuator builds an actuator over the port, verifying through sensor.
// A non-positive MaxAttempts falls back to the default budget.
func NewActuator(port gpio.Port, sensor *Sensor, t Timings, log *logger.Logger) *Actuator {
	if t.MaxAttempts <= 0 {
		t.MaxAttempts = DefaultTimings().MaxAttempts
	}
	return &Actuator{port: port, sensor: sensor, t: t, log: log}
}

// Drive presses the button until the sensed state equals desired or the
// attempt budget runs out. It is idempotent when already converged: no
// pulse is issued and ResultAlready is returned. Drive blocks for the
// whole retry sequence; at most one drive is in flight at a time.
func (a *Actuator) Drive(desired bool) models.ActuationOutcome {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sensor.Read() == desired {
		return models.ActuationOutcome{Result: models.ResultAlready, Desired: desired}
	}

	for attempt := 1; attempt <= a.t.MaxAttempts; attempt++ {
		// A failed pulse still consumes an attempt; the cooldown below
		// gives the hardware time to recover either way. The log line
		// separates a broken button line from an unresponsive appliance.
		if err := a.port.Pulse(a.t.Press); err != nil && a.log != nil {
			a.log.Warnw("button_pulse_failed", "err", err, "attempt", attempt)
		}
		time.Sleep(a.t.Settle)

		if a.sensor.Read() == desired {
			return models.ActuationOutcome{
				Result:   models.ResultConverged,
				Desired:  desired,
				Attempts: attempt,
			}
		}
		if attempt < a.t.MaxAttempts {
			time.Sleep(a.t.Cooldown)
		}
	}

	return models.ActuationOutcome{
		Result:   models.ResultFailed,
		Desired:  desired,
		Attempts: a.t.MaxAttempts,
	}
}
