package infrastructure

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLogEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry), "line %q", scanner.Text())
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestFileLoggerAdapter_NewFileLoggerAdapter(t *testing.T) {
	tests := []struct {
		name        string
		logPath     string
		expectError bool
	}{
		{
			name:    "valid_path",
			logPath: filepath.Join(t.TempDir(), "backend.log"),
		},
		{
			name:    "nested_path",
			logPath: filepath.Join(t.TempDir(), "nested", "deep", "backend.log"),
		},
		{
			name:        "empty_path",
			logPath:     "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewFileLoggerAdapter(FileLoggerParams{Path: tt.logPath})

			if tt.expectError {
				assert.True(t, errors.IsConfigurationError(err))
				assert.Nil(t, logger)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, logger)
			assert.DirExists(t, filepath.Dir(tt.logPath))
		})
	}
}

func TestFileLoggerAdapter_LogLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backend.log")
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC))
	logger, err := NewFileLoggerAdapter(FileLoggerParams{Path: path, Component: "pocketbase", Clock: clock})
	require.NoError(t, err)

	logger.Debug("debug message", ports.F("n", 1))
	logger.Info("info message")
	logger.Warn("warn message", ports.F("error", fmt.Errorf("boom")))
	logger.Error("error message", ports.F("level", "spoofed"))

	entries := readLogEntries(t, path)
	require.Len(t, entries, 4)

	levels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for i, entry := range entries {
		assert.Equal(t, levels[i], entry["level"])
		assert.Equal(t, "pocketbase", entry["component"])
		assert.Equal(t, "2026-10-17T09:30:00Z", entry["ts"])
	}
	assert.Equal(t, float64(1), entries[0]["n"])
	assert.Equal(t, "boom", entries[2]["error"])
	assert.Equal(t, "ERROR", entries[3]["level"])
}

func TestFileLoggerAdapter_ConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backend.log")
	logger, err := NewFileLoggerAdapter(FileLoggerParams{Path: path})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				logger.Info("concurrent", ports.F("goroutine", i), ports.F("n", j))
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, readLogEntries(t, path), 100)
}

func TestFileLoggerAdapter_UnmarshalableField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backend.log")
	logger, err := NewFileLoggerAdapter(FileLoggerParams{Path: path})
	require.NoError(t, err)

	logger.Info("bad", ports.F("ch", make(chan int)))

	entries := readLogEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "failed to marshal log entry", entries[0]["msg"])
}
