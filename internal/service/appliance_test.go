package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shifty-eyed/esp-ac-control/internal/models"
	"github.com/shifty-eyed/esp-ac-control/internal/mqtt"
)

func newAppliance(sensorOn bool, clk *fakeClock, driver *fakeDriver) (*ApplianceService, *ScheduleService, *JournalService, *mqtt.FakePublisher) {
	schedules := NewScheduleService(newFakeSlotRepo())
	journal := NewJournalService(clk, 20)
	pub := mqtt.NewFakePublisher()
	svc := NewApplianceService(&fakeSensor{on: sensorOn}, driver, clk, schedules, journal, pub, nil)
	return svc, schedules, journal, pub
}

func TestApplianceService_Status(t *testing.T) {
	clk := &fakeClock{t: models.WallTime{Hour: 14, Minute: 3}, ok: true}
	svc, schedules, _, _ := newAppliance(true, clk, &fakeDriver{})

	if err := schedules.Upsert(context.Background(), 1, 7, 0, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := svc.Status(context.Background())
	if !snap.On {
		t.Fatalf("expected sensed state on")
	}
	if !snap.TimeKnown || snap.Time != "14:03" {
		t.Fatalf("expected time 14:03, got %+v", snap)
	}
	if len(snap.Schedules) != 1 || snap.Schedules[0].ID != 1 {
		t.Fatalf("expected schedule listing, got %+v", snap.Schedules)
	}
}

func TestApplianceService_Status_TimeUnknown(t *testing.T) {
	svc, _, _, _ := newAppliance(false, &fakeClock{ok: false}, &fakeDriver{})

	snap := svc.Status(context.Background())
	if snap.TimeKnown || snap.Time != "" {
		t.Fatalf("expected unknown time, got %+v", snap)
	}
	if snap.On {
		t.Fatalf("expected sensed state off")
	}
}

func TestApplianceService_Drive_JournalsAndPublishes(t *testing.T) {
	clk := &fakeClock{t: models.WallTime{Hour: 8, Minute: 0}, ok: true}
	driver := &fakeDriver{}
	svc, _, journal, pub := newAppliance(false, clk, driver)

	out := svc.Drive(true)
	if out.Result != models.ResultConverged {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if len(driver.calls) != 1 || !driver.calls[0] {
		t.Fatalf("expected one Drive(true), got %v", driver.calls)
	}

	entries := journal.Entries()
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Message, "manual request: ") {
		t.Fatalf("expected manual journal entry, got %+v", entries)
	}
	if len(pub.Events) != 1 || pub.Events[0].Trigger != "manual" || !pub.Events[0].On {
		t.Fatalf("expected manual state event, got %+v", pub.Events)
	}
}

func TestApplianceService_Drive_FailedOutcomePublishesUnchangedState(t *testing.T) {
	driver := &fakeDriver{outcome: func(desired bool) models.ActuationOutcome {
		return models.ActuationOutcome{Result: models.ResultFailed, Desired: desired, Attempts: 5}
	}}
	svc, _, _, pub := newAppliance(false, &fakeClock{ok: false}, driver)

	out := svc.Drive(true)
	if out.Result != models.ResultFailed {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if len(pub.Events) != 1 || pub.Events[0].On {
		t.Fatalf("failed drive must publish the state it was left in, got %+v", pub.Events)
	}
}

func TestApplianceService_Drive_LogsPublishFailure(t *testing.T) {
	log, logs := observedLogger()
	pub := mqtt.NewFakePublisher()
	pub.PublishErr = errors.New("broker gone")
	schedules := NewScheduleService(newFakeSlotRepo())
	journal := NewJournalService(&fakeClock{ok: false}, 20)
	svc := NewApplianceService(&fakeSensor{}, &fakeDriver{}, &fakeClock{ok: false}, schedules, journal, pub, log)

	out := svc.Drive(true)
	if out.Result != models.ResultConverged {
		t.Fatalf("publish failure must not affect the outcome, got %+v", out)
	}
	if logs.FilterMessage("state_publish_failed").Len() != 1 {
		t.Fatalf("expected one publish failure warning, got %d", logs.Len())
	}
}

func TestApplianceService_RequestResync(t *testing.T) {
	clk := &fakeClock{ok: false, resyncErr: models.ErrServiceUnavailable}
	svc, _, _, _ := newAppliance(false, clk, &fakeDriver{})

	if err := svc.RequestResync(); !errors.Is(err, models.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
	clk.resyncErr = nil
	if err := svc.RequestResync(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clk.resyncs != 2 {
		t.Fatalf("expected 2 resync requests, got %d", clk.resyncs)
	}
}
