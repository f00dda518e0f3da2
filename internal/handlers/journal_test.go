package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shifty-eyed/esp-ac-control/internal/models"
	"github.com/shifty-eyed/esp-ac-control/internal/service"
)

func TestJournalHandlers_ListAndClear(t *testing.T) {
	j := &mockJournal{entries: []models.JournalEntry{
		{ID: "a", At: "07:00", Message: "schedule 0 (07:00): turned on after 1 attempt(s)"},
		{ID: "b", At: "08:15", Message: "manual request: already on"},
	}}
	r := newTestRouter(&service.Service{Journal: j, Scheduler: mockScheduler{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/journal", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d", w.Code)
	}
	var resp struct {
		Count   int                   `json:"count"`
		Entries []models.JournalEntry `json:"entries"`
		Lines   []string              `json:"lines"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 2 || len(resp.Entries) != 2 {
		t.Fatalf("unexpected listing: %+v", resp)
	}
	// Oldest first, rendered with the timestamp prefix.
	if resp.Lines[0] != "[07:00] schedule 0 (07:00): turned on after 1 attempt(s)" {
		t.Fatalf("unexpected line rendering: %q", resp.Lines[0])
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/journal", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("clear status=%d", w.Code)
	}
	if j.cleared != 1 {
		t.Fatalf("expected 1 clear call, got %d", j.cleared)
	}
}
