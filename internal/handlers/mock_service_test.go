package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shifty-eyed/esp-ac-control/internal/models"
	"github.com/shifty-eyed/esp-ac-control/internal/service"
)

// ---- Service mocks ----

type mockAppliance struct {
	status     models.StatusSnapshot
	outcome    models.ActuationOutcome
	resyncErr  error
	driveCalls []bool
	resyncs    int
}

func (m *mockAppliance) Status(ctx context.Context) models.StatusSnapshot { return m.status }
func (m *mockAppliance) Drive(desired bool) models.ActuationOutcome {
	m.driveCalls = append(m.driveCalls, desired)
	out := m.outcome
	out.Desired = desired
	return out
}
func (m *mockAppliance) RequestResync() error {
	m.resyncs++
	return m.resyncErr
}

type mockSchedules struct {
	slots     []models.ScheduleSlot
	upsertErr error
	removeErr error
	upserts   []models.ScheduleSlot
	removed   []int
}

func (m *mockSchedules) LoadAll(ctx context.Context) error { return nil }
func (m *mockSchedules) Upsert(ctx context.Context, id, hour, minute int, on bool) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserts = append(m.upserts, models.ScheduleSlot{ID: id, Hour: hour, Minute: minute, On: on, Valid: true})
	return nil
}
func (m *mockSchedules) Remove(ctx context.Context, id int) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, id)
	return nil
}
func (m *mockSchedules) ListValid() []models.ScheduleSlot { return m.slots }

type mockJournal struct {
	entries []models.JournalEntry
	cleared int
}

func (m *mockJournal) Append(message string) {
	m.entries = append(m.entries, models.JournalEntry{At: models.TimeUnknown, Message: message})
}
func (m *mockJournal) Entries() []models.JournalEntry { return m.entries }
func (m *mockJournal) Clear() {
	m.cleared++
	m.entries = nil
}

type mockScheduler struct{}

func (mockScheduler) Run(ctx context.Context, tick time.Duration) {}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(s, nil).InitRoutes()
}
