package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shifty-eyed/esp-ac-control/internal/clock"
	"github.com/shifty-eyed/esp-ac-control/internal/logger"
	"github.com/shifty-eyed/esp-ac-control/internal/models"
	"github.com/shifty-eyed/esp-ac-control/internal/mqtt"
)

// DefaultTick bounds firing latency. Any interval well under a minute
// preserves the contract; the value is a tunable, not part of it.
const DefaultTick = 500 * time.Millisecond

// scheduleTable is the slice of ScheduleService the scheduler needs.
type scheduleTable interface {
	Due(now models.WallTime) []models.ScheduleSlot
	Rearm(minute int)
}

// SchedulerService polls the clock and fires due schedule slots, at most
// once per matching calendar minute per slot, with no catch-up for minutes
// missed while the process was down. Slots firing in the same minute run
// in ascending id order, so with conflicting desired states the highest id
// wins.
type SchedulerService struct {
	clk      clock.Source
	table    scheduleTable
	actuator Driver
	journal  Journal
	pub      mqtt.Publisher
	log      *logger.Logger
}

func NewSchedulerService(
	clk clock.Source,
	table scheduleTable,
	actuator Driver,
	journal Journal,
	pub mqtt.Publisher,
	log *logger.Logger,
) *SchedulerService {
	return &SchedulerService{
		clk:      clk,
		table:    table,
		actuator: actuator,
		journal:  journal,
		pub:      pub,
		log:      log,
	}
}

// Run ticks at the given interval until ctx is canceled. A non-positive
// tick falls back to DefaultTick.
func (s *SchedulerService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultTick
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.tick()
		}
	}
}

// tick evaluates the table against the current wall time. When the clock
// is unavailable, scheduling is simply suspended for this tick.
func (s *SchedulerService) tick() {
	now, ok := s.clk.Now()
	if !ok {
		return
	}

	for _, slot := range s.table.Due(now) {
		outcome := s.actuator.Drive(slot.On)
		s.journal.Append(fmt.Sprintf("schedule %d (%s): %s",
			slot.ID, models.WallTime{Hour: slot.Hour, Minute: slot.Minute}, outcome))
		err := s.pub.Publish(mqtt.StateEvent{
			On:      reachedState(outcome),
			Outcome: outcome.String(),
			Trigger: "schedule",
			At:      time.Now().UTC(),
		})
		if err != nil && s.log != nil {
			s.log.Warnw("state_publish_failed", "err", err, "trigger", "schedule", "slot", slot.ID)
		}
	}

	s.table.Rearm(now.Minute)
}
