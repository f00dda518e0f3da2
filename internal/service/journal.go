package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/shifty-eyed/esp-ac-control/internal/clock"
	"github.com/shifty-eyed/esp-ac-control/internal/models"
)

// DefaultJournalCapacity is the ring size used when config supplies none.
const DefaultJournalCapacity = 300

// JournalService owns the bounded circular audit log. Once full, every
// append overwrites the oldest surviving entry. Append never fails.
type JournalService struct {
	mu      sync.Mutex
	entries []models.JournalEntry
	cursor  int // next write position
	count   int // saturates at capacity
	clk     clock.Source
}

func NewJournalService(clk clock.Source, capacity int) *JournalService {
	if capacity <= 0 {
		capacity = DefaultJournalCapacity
	}
	return &JournalService{
		entries: make([]models.JournalEntry, capacity),
		clk:     clk,
	}
}

// Append timestamps the message with the current wall time, or the
// "time unknown" sentinel when the clock has no time yet.
func (j *JournalService) Append(message string) {
	at := models.TimeUnknown
	if t, ok := j.clk.Now(); ok {
		at = t.String()
	}
	entry := models.JournalEntry{ID: uuid.NewString(), At: at, Message: message}

	j.mu.Lock()
	j.entries[j.cursor] = entry
	j.cursor = (j.cursor + 1) % len(j.entries)
	if j.count < len(j.entries) {
		j.count++
	}
	j.mu.Unlock()
}

// Entries returns the surviving entries oldest to newest: from index 0
// when the ring has never wrapped, otherwise from the write cursor.
func (j *JournalService) Entries() []models.JournalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()

	start := 0
	if j.count == len(j.entries) {
		start = j.cursor
	}
	out := make([]models.JournalEntry, 0, j.count)
	for i := 0; i < j.count; i++ {
		out = append(out, j.entries[(start+i)%len(j.entries)])
	}
	return out
}

// Clear resets the cursor and count; stale slots stay in the backing
// array but are unreachable until overwritten.
func (j *JournalService) Clear() {
	j.mu.Lock()
	j.cursor = 0
	j.count = 0
	j.mu.Unlock()
}
