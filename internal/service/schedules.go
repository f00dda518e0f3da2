package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shifty-eyed/esp-ac-control/internal/models"
	"github.com/shifty-eyed/esp-ac-control/internal/repository"
)

// ScheduleService is the in-memory mirror of the 16 persisted schedule
// slots. Every mutation persists synchronously before touching the
// mirror, so an unexpected restart never observes a half-applied change.
type ScheduleService struct {
	mu    sync.Mutex
	slots [models.SlotCount]models.ScheduleSlot
	repo  repository.SlotRepo
}

func NewScheduleService(repo repository.SlotRepo) *ScheduleService {
	s := &ScheduleService{repo: repo}
	for i := range s.slots {
		s.slots[i].ID = i
	}
	return s
}

func validateSlotID(id int) error {
	if id < 0 || id >= models.SlotCount {
		return &models.ValidationError{
			Field:  "id",
			Reason: fmt.Sprintf("must be in [0,%d], got %d", models.SlotCount-1, id),
		}
	}
	return nil
}

// LoadAll replaces the mirror with the persisted rows. Called exactly once
// at startup. Rows with out-of-range ids or fields are dropped as invalid;
// the executed-this-minute flag always starts cleared.
func (s *ScheduleService) LoadAll(ctx context.Context) error {
	rows, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slots {
		s.slots[i] = models.ScheduleSlot{ID: i}
	}
	for _, row := range rows {
		if row.ID < 0 || row.ID >= models.SlotCount {
			continue
		}
		if row.Hour < 0 || row.Hour > 23 || row.Minute < 0 || row.Minute > 59 {
			continue
		}
		row.Executed = false
		s.slots[row.ID] = row
	}
	return nil
}

// Upsert validates, persists and then applies one slot definition.
func (s *ScheduleService) Upsert(ctx context.Context, id, hour, minute int, on bool) error {
	if err := validateSlotID(id); err != nil {
		return err
	}
	if hour < 0 || hour > 23 {
		return &models.ValidationError{Field: "hour", Reason: fmt.Sprintf("must be in [0,23], got %d", hour)}
	}
	if minute < 0 || minute > 59 {
		return &models.ValidationError{Field: "minute", Reason: fmt.Sprintf("must be in [0,59], got %d", minute)}
	}

	slot := models.ScheduleSlot{ID: id, Hour: hour, Minute: minute, On: on, Valid: true}

	// The lock is held across the store write so concurrent mutations of
	// the same slot cannot interleave persist and apply: the mirror always
	// reflects the last persisted row.
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Save(ctx, slot); err != nil {
		return err
	}
	s.slots[id] = slot
	return nil
}

// Remove marks a slot invalid and persists the tombstone.
func (s *ScheduleService) Remove(ctx context.Context, id int) error {
	if id < 0 || id >= models.SlotCount {
		return models.ErrNotFound
	}

	// Validity check and tombstone write happen under one lock so a
	// concurrent upsert cannot slip between them.
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.slots[id].Valid {
		return models.ErrNotFound
	}

	tombstone := models.ScheduleSlot{ID: id}
	if err := s.repo.Save(ctx, tombstone); err != nil {
		return err
	}
	s.slots[id] = tombstone
	return nil
}

// ListValid returns the valid slots in ascending id order.
func (s *ScheduleService) ListValid() []models.ScheduleSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ScheduleSlot, 0, models.SlotCount)
	for _, slot := range s.slots {
		if slot.Valid {
			out = append(out, slot)
		}
	}
	return out
}

// Due returns the valid slots matching now that have not fired this
// minute, marking each as executed before it is returned so a slot fires
// at most once per matching minute.
func (s *ScheduleService) Due(now models.WallTime) []models.ScheduleSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []models.ScheduleSlot
	for i := range s.slots {
		slot := &s.slots[i]
		if slot.Valid && !slot.Executed && slot.Matches(now) {
			slot.Executed = true
			due = append(due, *slot)
		}
	}
	return due
}

// Rearm clears the executed flag of every slot whose minute no longer
// matches, making it eligible for its next occurrence.
func (s *ScheduleService) Rearm(minute int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.slots {
		if s.slots[i].Minute != minute {
			s.slots[i].Executed = false
		}
	}
}
