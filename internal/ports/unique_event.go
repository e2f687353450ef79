package ports

import (
	"context"
	"time"
)

// UniqueEventRecord is one line of the durable unique-event log
type UniqueEventRecord struct {
	Timestamp time.Time `json:"ts"`
	SubjectID string    `json:"subject_id"`
	ActorID   string    `json:"actor_id"`
}

// EventLogStore is an append-only durable record stream
type EventLogStore interface {
	// Append durably writes rec. It returns only after the write completed or failed.
	Append(ctx context.Context, rec UniqueEventRecord) error
	// Replay calls fn for the stored records in append order. When limit > 0 only the
	// most recent limit records are replayed. Malformed records are skipped.
	Replay(ctx context.Context, limit int, fn func(UniqueEventRecord)) error
	Close() error
}

// UniqueEventLedger answers "is this the first time we see (subject, actor)"
type UniqueEventLedger interface {
	Load(ctx context.Context, limit int) error
	TryMark(ctx context.Context, subjectID, actorID string) (bool, error)
}
