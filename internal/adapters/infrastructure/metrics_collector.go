package infrastructure

import (
	"blogapi.app/internal/ports"
)

// MetricsCollectorAdapter is the admin read surface over the backend call
// aggregator and the request cache
type MetricsCollectorAdapter struct {
	metrics ports.MetricsReader
	cache   ports.CacheInspector
	logger  ports.Logger
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	Metrics ports.MetricsReader
	Cache   ports.CacheInspector
	Logger  ports.Logger
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		metrics: config.Metrics,
		cache:   config.Cache,
		logger:  config.Logger,
	}
}

// BackendMetrics returns the aggregated backend call view
func (m *MetricsCollectorAdapter) BackendMetrics() ports.MetricsSnapshot {
	if m.metrics == nil {
		return ports.MetricsSnapshot{Rows: []ports.MetricRow{}, Statuses: []ports.StatusCount{}}
	}
	return m.metrics.Snapshot()
}

// ResetBackendMetrics clears the aggregator, keeping its start time
func (m *MetricsCollectorAdapter) ResetBackendMetrics() {
	if m.metrics == nil {
		return
	}
	m.metrics.Reset()
	m.logger.Info("Backend metrics reset")
}

// CacheStats returns the cache size and counters
func (m *MetricsCollectorAdapter) CacheStats() ports.CacheSnapshot {
	if m.cache == nil {
		return ports.CacheSnapshot{}
	}
	return m.cache.Snapshot()
}

// ClearCache drops every cached entry
func (m *MetricsCollectorAdapter) ClearCache() {
	if m.cache == nil {
		return
	}
	before := m.cache.Snapshot().Items
	m.cache.Clear()
	m.logger.Info("Request cache cleared", ports.F("items", before))
}
