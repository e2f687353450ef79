package infrastructure

import (
	"testing"
	"time"

	"blogapi.app/internal/core/cache"
	"blogapi.app/internal/core/metrics"
	"blogapi.app/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCollectorAdapter(t *testing.T) {
	aggregator := metrics.NewAggregator()
	c := cache.New[any]()
	collector := NewMetricsCollectorAdapter(MetricsCollectorConfig{
		Metrics: aggregator,
		Cache:   c,
		Logger:  mocks.NewLoggerAllowingAll(t),
	})

	aggregator.Record("GET", "/api/collections/posts/records", 200, 10*time.Millisecond)
	c.Set("stats:one:a", 1, time.Minute)
	c.Get("stats:one:a")

	snapshot := collector.BackendMetrics()
	assert.Equal(t, int64(1), snapshot.TotalRequests)
	require.Len(t, snapshot.Rows, 1)
	assert.Equal(t, "GET posts", snapshot.Rows[0].Key)

	assert.Equal(t, 1, collector.CacheStats().Items)
	assert.Equal(t, int64(1), collector.CacheStats().Stats.Hits)

	collector.ResetBackendMetrics()
	assert.Zero(t, collector.BackendMetrics().TotalRequests)

	collector.ClearCache()
	assert.Zero(t, collector.CacheStats().Items)
	assert.Equal(t, int64(1), collector.CacheStats().Stats.Hits)
}

func TestMetricsCollectorAdapter_Empty(t *testing.T) {
	collector := NewMetricsCollectorAdapter(MetricsCollectorConfig{Logger: mocks.NewLoggerAllowingAll(t)})

	assert.Empty(t, collector.BackendMetrics().Rows)
	assert.Zero(t, collector.CacheStats().Items)
	collector.ResetBackendMetrics()
	collector.ClearCache()
}
