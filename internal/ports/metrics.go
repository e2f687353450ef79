package ports

import "time"

// StatusNoResponse is the status recorded when a backend call produced no HTTP response
// (network error, timeout). It never collides with a real HTTP status.
const StatusNoResponse = 0

// CallRecorder receives the outcome of every outbound backend call
type CallRecorder interface {
	Record(method, path string, status int, latency time.Duration)
}

// MetricRow is the per-bucket aggregate. Latencies are in milliseconds.
type MetricRow struct {
	Key     string  `json:"key"`
	Count   int64   `json:"count"`
	TotalMs float64 `json:"total_ms"`
	AvgMs   float64 `json:"avg_ms"`
	MinMs   float64 `json:"min_ms"`
	MaxMs   float64 `json:"max_ms"`
}

// StatusCount is one entry of the status-code histogram
type StatusCount struct {
	Status int   `json:"status"`
	Count  int64 `json:"count"`
}

// MetricsSnapshot is the rolled-up view returned to the admin surface
type MetricsSnapshot struct {
	UptimeSeconds int64         `json:"uptime_s"`
	TotalRequests int64         `json:"total_requests"`
	TotalTimeMs   float64       `json:"total_time_ms"`
	Rows          []MetricRow   `json:"rows"`
	Statuses      []StatusCount `json:"statuses"`
}

// MetricsReader defines the contract for the metrics read surface
type MetricsReader interface {
	Snapshot() MetricsSnapshot
	Reset()
}
