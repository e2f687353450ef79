package pocketbase

import (
	"net/http"
	"time"

	"blogapi.app/internal/ports"
	"github.com/jonboulle/clockwork"
)

// InstrumentedTransport reports method, path, status and latency of every
// round trip to a CallRecorder. Calls that get no response are reported with
// ports.StatusNoResponse. A panicking recorder is logged and never fails the call.
type InstrumentedTransport struct {
	base     http.RoundTripper
	recorder ports.CallRecorder
	clock    clockwork.Clock
	logger   ports.Logger
}

// NewInstrumentedTransport wraps base. Nil base means http.DefaultTransport.
func NewInstrumentedTransport(base http.RoundTripper, recorder ports.CallRecorder, clock clockwork.Clock, logger ports.Logger) *InstrumentedTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &InstrumentedTransport{base: base, recorder: recorder, clock: clock, logger: logger}
}

// RoundTrip implements http.RoundTripper
func (t *InstrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := t.clock.Now()
	resp, err := t.base.RoundTrip(req)
	latency := t.clock.Since(start)

	status := ports.StatusNoResponse
	if err == nil && resp != nil {
		status = resp.StatusCode
	}
	t.record(req.Method, req.URL.Path, status, latency)

	return resp, err
}

func (t *InstrumentedTransport) record(method, path string, status int, latency time.Duration) {
	if t.recorder == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil && t.logger != nil {
			t.logger.Error("Backend call recorder failed",
				ports.F("method", method),
				ports.F("path", path),
				ports.F("panic", r))
		}
	}()
	t.recorder.Record(method, path, status, latency)
}
