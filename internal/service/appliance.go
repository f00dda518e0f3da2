package service

import (
	"context"
	"time"

	"github.com/shifty-eyed/esp-ac-control/internal/clock"
	"github.com/shifty-eyed/esp-ac-control/internal/logger"
	"github.com/shifty-eyed/esp-ac-control/internal/models"
	"github.com/shifty-eyed/esp-ac-control/internal/mqtt"
)

// ApplianceService handles manual control requests. The appliance state is
// never cached: every status read samples the sensor live.
type ApplianceService struct {
	sensor    SensorReader
	actuator  Driver
	clk       clock.Source
	schedules Schedules
	journal   Journal
	pub       mqtt.Publisher
	log       *logger.Logger
}

func NewApplianceService(
	sensor SensorReader,
	actuator Driver,
	clk clock.Source,
	schedules Schedules,
	journal Journal,
	pub mqtt.Publisher,
	log *logger.Logger,
) *ApplianceService {
	return &ApplianceService{
		sensor:    sensor,
		actuator:  actuator,
		clk:       clk,
		schedules: schedules,
		journal:   journal,
		pub:       pub,
		log:       log,
	}
}

// Status returns the live sensed state, the current wall time if known,
// and the valid schedules.
func (s *ApplianceService) Status(ctx context.Context) models.StatusSnapshot {
	snap := models.StatusSnapshot{
		On:        s.sensor.Read(),
		Schedules: s.schedules.ListValid(),
	}
	if t, ok := s.clk.Now(); ok {
		snap.Time = t.String()
		snap.TimeKnown = true
	}
	return snap
}

// Drive pushes the appliance toward desired, journals the manual request
// and publishes the resulting state. A FAILED outcome is returned to the
// caller as a value, not an error.
func (s *ApplianceService) Drive(desired bool) models.ActuationOutcome {
	outcome := s.actuator.Drive(desired)
	s.journal.Append("manual request: " + outcome.String())
	err := s.pub.Publish(mqtt.StateEvent{
		On:      reachedState(outcome),
		Outcome: outcome.String(),
		Trigger: "manual",
		At:      time.Now().UTC(),
	})
	if err != nil && s.log != nil {
		s.log.Warnw("state_publish_failed", "err", err, "trigger", "manual")
	}
	return outcome
}

// RequestResync forwards the fire-and-forget resync to the clock source.
func (s *ApplianceService) RequestResync() error {
	return s.clk.RequestResync()
}

// reachedState derives the post-drive state from the outcome: a failed
// drive left the appliance where it was.
func reachedState(o models.ActuationOutcome) bool {
	if o.Result == models.ResultFailed {
		return !o.Desired
	}
	return o.Desired
}
