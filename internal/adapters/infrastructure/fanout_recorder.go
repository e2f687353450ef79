package infrastructure

import (
	"time"

	"blogapi.app/internal/ports"
)

// FanOutRecorder forwards every backend call to several recorders.
// A panicking recorder is logged and does not stop the others.
type FanOutRecorder struct {
	recorders []ports.CallRecorder
	logger    ports.Logger
}

// NewFanOutRecorder creates a recorder over recorders, skipping nil ones
func NewFanOutRecorder(logger ports.Logger, recorders ...ports.CallRecorder) *FanOutRecorder {
	f := &FanOutRecorder{logger: logger}
	for _, r := range recorders {
		if r != nil {
			f.recorders = append(f.recorders, r)
		}
	}
	return f
}

// Record implements ports.CallRecorder
func (f *FanOutRecorder) Record(method, path string, status int, latency time.Duration) {
	for _, r := range f.recorders {
		f.recordOne(r, method, path, status, latency)
	}
}

func (f *FanOutRecorder) recordOne(r ports.CallRecorder, method, path string, status int, latency time.Duration) {
	defer func() {
		if p := recover(); p != nil && f.logger != nil {
			f.logger.Error("Call recorder panicked",
				ports.F("method", method),
				ports.F("path", path),
				ports.F("panic", p))
		}
	}()
	r.Record(method, path, status, latency)
}

// BackendCallLogger logs every backend call at debug level, and non-2xx calls at warn.
// With a FileLoggerAdapter it produces the dedicated backend-call log.
type BackendCallLogger struct {
	logger ports.Logger
}

// NewBackendCallLogger creates a recorder writing to logger
func NewBackendCallLogger(logger ports.Logger) *BackendCallLogger {
	return &BackendCallLogger{logger: logger}
}

// Record implements ports.CallRecorder
func (b *BackendCallLogger) Record(method, path string, status int, latency time.Duration) {
	fields := []ports.Field{
		ports.F("method", method),
		ports.F("path", path),
		ports.F("status", status),
		ports.F("duration_ms", float64(latency.Microseconds())/1000),
	}
	if status < 200 || status > 299 {
		b.logger.Warn("Backend call failed", fields...)
		return
	}
	b.logger.Debug("Backend call", fields...)
}
