package service

import (
	"context"
	"time"

	"github.com/shifty-eyed/esp-ac-control/internal/clock"
	"github.com/shifty-eyed/esp-ac-control/internal/logger"
	"github.com/shifty-eyed/esp-ac-control/internal/models"
	"github.com/shifty-eyed/esp-ac-control/internal/mqtt"
	"github.com/shifty-eyed/esp-ac-control/internal/repository"
)

// SensorReader reports the debounced appliance state (device.Sensor).
type SensorReader interface {
	Read() bool
}

// Driver drives the appliance toward a desired state (device.Actuator).
type Driver interface {
	Drive(desired bool) models.ActuationOutcome
}

// Appliance exposes the manual control surface: live status, on/off
// drives and time resync.
type Appliance interface {
	Status(ctx context.Context) models.StatusSnapshot
	Drive(desired bool) models.ActuationOutcome
	RequestResync() error
}

// Schedules is the persisted 16-slot schedule table.
type Schedules interface {
	LoadAll(ctx context.Context) error
	Upsert(ctx context.Context, id, hour, minute int, on bool) error
	Remove(ctx context.Context, id int) error
	ListValid() []models.ScheduleSlot
}

// Journal is the bounded circular audit log.
type Journal interface {
	Append(message string)
	Entries() []models.JournalEntry
	Clear()
}

// Scheduler runs the polling loop that fires due schedules.
// Stop via context cancellation in main() for graceful shutdown.
type Scheduler interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Appliance
	Schedules
	Journal
	Scheduler
}

// NewService wires the device, clock and repository layers into the
// concrete services. The journal and schedule table are each owned by a
// single service and guarded by their own mutex.
func NewService(
	repos *repository.Repository,
	sensor SensorReader,
	actuator Driver,
	clk clock.Source,
	pub mqtt.Publisher,
	journalCapacity int,
	log *logger.Logger,
) *Service {
	journal := NewJournalService(clk, journalCapacity)
	schedules := NewScheduleService(repos.Slots)
	return &Service{
		Appliance: NewApplianceService(sensor, actuator, clk, schedules, journal, pub, log),
		Schedules: schedules,
		Journal:   journal,
		Scheduler: NewSchedulerService(clk, schedules, actuator, journal, pub, log),
	}
}
