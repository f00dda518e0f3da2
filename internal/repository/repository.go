package repository

import (
	"context"
	"database/sql"

	"github.com/shifty-eyed/esp-ac-control/internal/models"
)

// SlotRepo is the persistent store behind the schedule table: 16 fixed
// records keyed by slot id. Save writes both live slots and tombstones
// (valid=false); an absent row is equivalent to a tombstone.
type SlotRepo interface {
	LoadAll(ctx context.Context) ([]models.ScheduleSlot, error)
	Save(ctx context.Context, slot models.ScheduleSlot) error
}

type Repository struct {
	Slots SlotRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Slots: NewSlotSQLite(db),
	}
}
