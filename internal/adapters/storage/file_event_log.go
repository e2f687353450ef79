package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"blogapi.app/pkg/timestamp"
)

const maxLineBytes = 64 * 1024

// FileEventLog is an append-only JSON lines file. Each record is written with
// a single write call on a file opened with O_APPEND, so concurrent writers in
// other processes never interleave within a line.
type FileEventLog struct {
	path  string
	fsync bool

	mu   sync.Mutex
	file appendFile
	// torn is set when a failed write left a line without its newline.
	torn bool
}

type appendFile interface {
	io.Writer
	Sync() error
	Close() error
}

// lineRecord also accepts the older post_id/vid field names.
type lineRecord struct {
	Timestamp string `json:"ts"`
	SubjectID string `json:"subject_id"`
	ActorID   string `json:"actor_id"`
	PostID    string `json:"post_id,omitempty"`
	Vid       string `json:"vid,omitempty"`
}

// NewFileEventLog opens (creating if needed) the log at path and its parent directory.
// With fsync every append is flushed to stable storage before it returns.
func NewFileEventLog(path string, fsync bool) (*FileEventLog, error) {
	if path == "" {
		return nil, errors.NewConfigurationError("event log path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.NewStorageError("failed to create event log directory", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.NewStorageError("failed to open event log", err)
	}

	return &FileEventLog{path: path, fsync: fsync, file: file}, nil
}

// Path returns the log file location
func (l *FileEventLog) Path() string {
	return l.path
}

// Append writes rec as one line. After a failed partial write the next record
// starts on a fresh line, leaving the fragment as a single malformed line that
// Replay skips.
func (l *FileEventLog) Append(ctx context.Context, rec ports.UniqueEventRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(lineRecord{
		Timestamp: timestamp.FormatISO(rec.Timestamp),
		SubjectID: rec.SubjectID,
		ActorID:   rec.ActorID,
	})
	if err != nil {
		return errors.NewStorageError("failed to encode event", err)
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return errors.NewStorageError("event log is closed", nil)
	}
	if l.torn {
		data = append([]byte{'\n'}, data...)
	}
	n, err := l.file.Write(data)
	if err != nil {
		if n > 0 {
			l.torn = data[n-1] != '\n'
		}
		return errors.NewStorageError("failed to append event", err)
	}
	l.torn = false
	if l.fsync {
		if err := l.file.Sync(); err != nil {
			return errors.NewStorageError("failed to sync event log", err)
		}
	}
	return nil
}

// Replay reads the log from the start. With limit > 0 only the last limit
// valid records are passed to fn. Lines that do not parse are skipped.
func (l *FileEventLog) Replay(ctx context.Context, limit int, fn func(ports.UniqueEventRecord)) error {
	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.NewStorageError("failed to open event log for replay", err)
	}
	defer file.Close()

	var ring []ports.UniqueEventRecord
	next := 0
	if limit > 0 {
		ring = make([]ports.UniqueEventRecord, 0, min(limit, 4096))
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	lines := 0
	for scanner.Scan() {
		lines++
		if lines%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		rec, ok := parseLine(scanner.Bytes())
		if !ok {
			continue
		}
		if limit <= 0 {
			fn(rec)
			continue
		}
		if len(ring) < limit {
			ring = append(ring, rec)
		} else {
			ring[next] = rec
			next = (next + 1) % limit
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to read event log after %d lines", lines), err)
	}

	for i := 0; i < len(ring); i++ {
		fn(ring[(next+i)%len(ring)])
	}
	return nil
}

// Close releases the file handle. Further appends fail.
func (l *FileEventLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func parseLine(line []byte) (ports.UniqueEventRecord, bool) {
	var lr lineRecord
	if err := json.Unmarshal(line, &lr); err != nil {
		return ports.UniqueEventRecord{}, false
	}

	rec := ports.UniqueEventRecord{SubjectID: lr.SubjectID, ActorID: lr.ActorID}
	if rec.SubjectID == "" {
		rec.SubjectID = lr.PostID
	}
	if rec.ActorID == "" {
		rec.ActorID = lr.Vid
	}
	if rec.SubjectID == "" || rec.ActorID == "" {
		return ports.UniqueEventRecord{}, false
	}

	if ts, err := timestamp.Parse(lr.Timestamp); err == nil {
		rec.Timestamp = ts
	}
	return rec, true
}
