package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"blogapi.app/pkg/timestamp"
	"github.com/jonboulle/clockwork"
)

// FileLoggerAdapter writes structured JSON lines to a dedicated file.
// It backs the backend-call log enabled with BACKEND_LOG_FILE_PATH.
type FileLoggerAdapter struct {
	filePath  string
	component string
	clock     clockwork.Clock
	mutex     sync.Mutex
}

// FileLoggerParams holds parameters for creating a file logger
type FileLoggerParams struct {
	Path string
	// Component is added to every entry when set
	Component string
	Clock     clockwork.Clock
}

// NewFileLoggerAdapter creates a new file logger adapter
func NewFileLoggerAdapter(params FileLoggerParams) (*FileLoggerAdapter, error) {
	if params.Path == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(params.Path), 0755); err != nil {
		return nil, errors.NewStorageError("failed to create log directory", err)
	}

	clock := params.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &FileLoggerAdapter{
		filePath:  params.Path,
		component: params.Component,
		clock:     clock,
	}, nil
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry("DEBUG", msg, fields...)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry("INFO", msg, fields...)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry("WARN", msg, fields...)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry("ERROR", msg, fields...)
}

func (f *FileLoggerAdapter) writeLogEntry(level, msg string, fields ...ports.Field) {
	entry := make(map[string]interface{}, len(fields)+4)
	for _, field := range fields {
		value := field.Value
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		entry[field.Key] = value
	}
	// reserved keys win over fields of the same name
	entry["ts"] = timestamp.FormatISO(f.clock.Now())
	entry["level"] = level
	entry["msg"] = msg
	if f.component != "" {
		entry["component"] = f.component
	}

	data, err := json.Marshal(entry)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"level":"ERROR","msg":"failed to marshal log entry","error":%q}`, err.Error()))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.writeRawLog(append(data, '\n'))
}

func (f *FileLoggerAdapter) writeRawLog(data []byte) {
	file, err := os.OpenFile(f.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", f.filePath, err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
