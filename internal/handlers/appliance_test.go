package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shifty-eyed/esp-ac-control/internal/models"
	"github.com/shifty-eyed/esp-ac-control/internal/service"
)

func TestApplianceHandlers_StatusAndDrive(t *testing.T) {
	app := &mockAppliance{
		status: models.StatusSnapshot{
			On:        true,
			Time:      "12:30",
			TimeKnown: true,
			Schedules: []models.ScheduleSlot{{ID: 0, Hour: 7, Minute: 0, On: true, Valid: true}},
		},
		outcome: models.ActuationOutcome{Result: models.ResultConverged, Attempts: 2},
	}
	s := &service.Service{Appliance: app, Scheduler: mockScheduler{}}
	r := newTestRouter(s)

	// GET status
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/appliance/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var snap models.StatusSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal status: %v", err)
	}
	if !snap.On || snap.Time != "12:30" || len(snap.Schedules) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	// PUT on
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/appliance/on", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("on status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Outcome models.ActuationOutcome `json:"outcome"`
		Message string                  `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal outcome: %v", err)
	}
	if resp.Outcome.Result != models.ResultConverged || resp.Message != "turned on after 2 attempt(s)" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	// PUT off
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/appliance/off", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("off status=%d", w.Code)
	}
	if len(app.driveCalls) != 2 || !app.driveCalls[0] || app.driveCalls[1] {
		t.Fatalf("unexpected drive calls: %v", app.driveCalls)
	}
}

func TestApplianceHandlers_FailedOutcomeIsStill200(t *testing.T) {
	app := &mockAppliance{
		outcome: models.ActuationOutcome{Result: models.ResultFailed, Attempts: 5},
	}
	r := newTestRouter(&service.Service{Appliance: app, Scheduler: mockScheduler{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/appliance/on", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for exhausted retry budget, got %d", w.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != "failed to turn on after 5 attempts" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestResyncHandler(t *testing.T) {
	app := &mockAppliance{}
	r := newTestRouter(&service.Service{Appliance: app, Scheduler: mockScheduler{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/time/resync", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("resync status=%d", w.Code)
	}
	if app.resyncs != 1 {
		t.Fatalf("expected 1 resync call, got %d", app.resyncs)
	}

	app.resyncErr = models.ErrServiceUnavailable
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/time/resync", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without time path, got %d", w.Code)
	}
}

func TestHealthAndNotFound(t *testing.T) {
	r := newTestRouter(&service.Service{Scheduler: mockScheduler{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body struct {
		Endpoints []string `json:"endpoints"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal 404 body: %v", err)
	}
	if len(body.Endpoints) == 0 {
		t.Fatalf("404 body must list available endpoints")
	}
}
