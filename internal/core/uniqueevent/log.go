// Package uniqueevent implements the "first time we see (subject, actor)" ledger
// behind unique view counting.
//
// The in-memory seen-set is rebuilt from an append-only store by Load. A pair is
// added to the set only after its record has been appended, so every pair ever
// reported as new is durable before the caller learns about it.
package uniqueevent

import (
	"context"
	"fmt"
	"sync"

	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"github.com/jonboulle/clockwork"
)

type pair struct {
	subject string
	actor   string
}

// Log is the in-process ledger over a durable EventLogStore.
type Log struct {
	mu     sync.Mutex
	seen   map[pair]struct{}
	loaded bool

	store  ports.EventLogStore
	clock  clockwork.Clock
	logger ports.Logger
}

// Dependencies holds the collaborators of a Log.
type Dependencies struct {
	Store  ports.EventLogStore
	Clock  clockwork.Clock
	Logger ports.Logger
}

// NewLog creates an empty ledger. Load must be called before TryMark.
func NewLog(deps Dependencies) (*Log, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("event log store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	return &Log{
		seen:   make(map[pair]struct{}),
		store:  deps.Store,
		clock:  deps.Clock,
		logger: deps.Logger,
	}, nil
}

// Load replays the store into the seen-set. With limit > 0 only the most recent
// limit records are read. Records already known are kept, so calling Load again
// only adds pairs written by other processes since the last call.
func (l *Log) Load(ctx context.Context, limit int) error {
	replayed := make(map[pair]struct{})
	err := l.store.Replay(ctx, limit, func(rec ports.UniqueEventRecord) {
		if rec.SubjectID == "" || rec.ActorID == "" {
			return
		}
		replayed[pair{subject: rec.SubjectID, actor: rec.ActorID}] = struct{}{}
	})
	if err != nil {
		return errors.NewStorageError("failed to replay unique event log", err)
	}

	l.mu.Lock()
	before := len(l.seen)
	for p := range replayed {
		l.seen[p] = struct{}{}
	}
	l.loaded = true
	total := len(l.seen)
	l.mu.Unlock()

	l.logger.Info("unique event log loaded",
		ports.F("replayed", len(replayed)),
		ports.F("added", total-before),
		ports.F("total", total))
	return nil
}

// TryMark reports whether (subjectID, actorID) is seen for the first time and,
// if so, appends its record before returning true. An empty identifier yields
// false without writing. When the append fails the pair stays unseen and a
// storage error is returned; callers must not count the event.
//
// The lock is held across the append so that concurrent calls for one pair
// produce exactly one true.
func (l *Log) TryMark(ctx context.Context, subjectID, actorID string) (bool, error) {
	if subjectID == "" || actorID == "" {
		return false, nil
	}
	p := pair{subject: subjectID, actor: actorID}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.loaded {
		return false, errors.NewStorageError("unique event log used before load", nil)
	}
	if _, ok := l.seen[p]; ok {
		return false, nil
	}

	rec := ports.UniqueEventRecord{
		Timestamp: l.clock.Now().UTC(),
		SubjectID: subjectID,
		ActorID:   actorID,
	}
	if err := l.store.Append(ctx, rec); err != nil {
		l.logger.Error("failed to append unique event",
			ports.F("subject_id", subjectID),
			ports.F("error", err))
		return false, errors.NewStorageError(fmt.Sprintf("failed to record %s", subjectID), err)
	}

	l.seen[p] = struct{}{}
	return true, nil
}

// Len returns the number of known pairs.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}
