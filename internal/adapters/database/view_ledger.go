package database

import (
	"context"
	"time"

	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ViewEventModel represents one first-seen (subject, actor) pair
type ViewEventModel struct {
	ID        uint      `gorm:"primaryKey"`
	SubjectID string    `gorm:"size:191;not null;uniqueIndex:idx_view_events_subject_actor"`
	ActorID   string    `gorm:"size:191;not null;uniqueIndex:idx_view_events_subject_actor"`
	CreatedAt time.Time `gorm:"not null"`
}

func (ViewEventModel) TableName() string {
	return "view_events"
}

// ViewLedgerAdapter implements the UniqueEventLedger port on a unique index.
// The database is the seen-set, so every process sharing it agrees on which
// pairs are new. An insert that hits the index is the "already seen" answer.
type ViewLedgerAdapter struct {
	db    *gorm.DB
	clock clockwork.Clock
}

// NewViewLedgerAdapter creates a new view ledger adapter
func NewViewLedgerAdapter(db *gorm.DB, clock clockwork.Clock) ports.UniqueEventLedger {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ViewLedgerAdapter{db: db, clock: clock}
}

// Load only checks that the table is reachable; there is no local state to rebuild.
func (r *ViewLedgerAdapter) Load(ctx context.Context, _ int) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ViewEventModel{}).Limit(1).Count(&count).Error; err != nil {
		return errors.NewDatabaseError("failed to reach view events table", err)
	}
	return nil
}

// TryMark inserts the pair and reports whether a row was created.
func (r *ViewLedgerAdapter) TryMark(ctx context.Context, subjectID, actorID string) (bool, error) {
	if subjectID == "" || actorID == "" {
		return false, nil
	}

	model := &ViewEventModel{
		SubjectID: subjectID,
		ActorID:   actorID,
		CreatedAt: r.clock.Now().UTC(),
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(model)
	if result.Error != nil {
		return false, errors.NewDatabaseError("failed to record view event", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// Count returns the number of recorded pairs
func (r *ViewLedgerAdapter) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ViewEventModel{}).Count(&count).Error; err != nil {
		return 0, errors.NewDatabaseError("failed to count view events", err)
	}
	return count, nil
}
