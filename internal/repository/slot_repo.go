package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shifty-eyed/esp-ac-control/internal/models"
)

type SlotSQLite struct {
	db *sql.DB
}

func NewSlotSQLite(db *sql.DB) *SlotSQLite { return &SlotSQLite{db: db} }

// Ensure implementation of SlotRepo at compile time.
var _ SlotRepo = (*SlotSQLite)(nil)

const (
	upsertSlotSQL = `
		INSERT INTO schedule_slots (id, valid, hour, minute, on_state)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			valid=excluded.valid,
			hour=excluded.hour,
			minute=excluded.minute,
			on_state=excluded.on_state
	`

	selectSlotsSQL = `
		SELECT id, valid, hour, minute, on_state
		FROM schedule_slots ORDER BY id ASC
	`
)

// LoadAll returns every persisted slot row. Missing ids are simply absent
// from the result; the in-memory store treats them as invalid.
func (r *SlotSQLite) LoadAll(ctx context.Context) ([]models.ScheduleSlot, error) {
	rows, err := r.db.QueryContext(ctx, selectSlotsSQL)
	if err != nil {
		return nil, fmt.Errorf("select schedule slots: %w", err)
	}
	defer rows.Close()

	out := make([]models.ScheduleSlot, 0, models.SlotCount)
	for rows.Next() {
		var s models.ScheduleSlot
		if err := rows.Scan(&s.ID, &s.Valid, &s.Hour, &s.Minute, &s.On); err != nil {
			return nil, fmt.Errorf("scan schedule slot: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule slots: %w", err)
	}
	return out, nil
}

// Save upserts one slot row. A slot with Valid=false is the persisted
// tombstone; its hour/minute/on columns are stored but meaningless.
func (r *SlotSQLite) Save(ctx context.Context, slot models.ScheduleSlot) error {
	_, err := r.db.ExecContext(ctx, upsertSlotSQL,
		slot.ID,
		slot.Valid,
		slot.Hour,
		slot.Minute,
		slot.On,
	)
	if err != nil {
		return fmt.Errorf("save schedule slot %d: %w", slot.ID, err)
	}
	return nil
}
