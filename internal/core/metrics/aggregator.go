// Package metrics aggregates outbound backend calls into per-resource rows.
// Only running totals are kept; raw samples are never stored.
package metrics

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"blogapi.app/internal/ports"
	"github.com/jonboulle/clockwork"
)

type bucket struct {
	count   int64
	totalMs float64
	minMs   float64
	maxMs   float64
}

// Aggregator records (method, path, status, latency) tuples.
type Aggregator struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	order    []string
	statuses map[int]int64

	matchers  []BucketMatcher
	clock     clockwork.Clock
	startedAt time.Time
}

type options struct {
	clock    clockwork.Clock
	matchers []BucketMatcher
}

// Option configures an Aggregator.
type Option func(*options)

// WithClock replaces the wall clock used for uptime.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithMatchers replaces DefaultMatchers. Matchers are tried in order; the first match wins.
func WithMatchers(matchers ...BucketMatcher) Option {
	return func(o *options) { o.matchers = matchers }
}

// NewAggregator creates an aggregator; uptime is measured from this call.
func NewAggregator(opts ...Option) *Aggregator {
	o := options{
		clock:    clockwork.NewRealClock(),
		matchers: DefaultMatchers(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Aggregator{
		buckets:   make(map[string]*bucket),
		statuses:  make(map[int]int64),
		matchers:  o.matchers,
		clock:     o.clock,
		startedAt: o.clock.Now(),
	}
}

// BucketKey returns the row key a call is aggregated under.
func (a *Aggregator) BucketKey(method, path string) string {
	method = strings.ToUpper(method)
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	for _, m := range a.matchers {
		if label, ok := m.Match(path); ok {
			return method + " " + label
		}
	}
	return method + " " + path
}

// Record adds one call. status ports.StatusNoResponse marks a call that got no response.
func (a *Aggregator) Record(method, path string, status int, latency time.Duration) {
	key := a.BucketKey(method, path)
	ms := float64(latency) / float64(time.Millisecond)

	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.buckets[key]
	if !ok {
		b = &bucket{minMs: ms, maxMs: ms}
		a.buckets[key] = b
		a.order = append(a.order, key)
	}
	b.count++
	b.totalMs += ms
	b.minMs = math.Min(b.minMs, ms)
	b.maxMs = math.Max(b.maxMs, ms)

	a.statuses[status]++
}

// Snapshot rolls the counters up. Rows are ordered by descending count, ties by
// first appearance; statuses by ascending code.
func (a *Aggregator) Snapshot() ports.MetricsSnapshot {
	now := a.clock.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	snap := ports.MetricsSnapshot{
		UptimeSeconds: int64(now.Sub(a.startedAt) / time.Second),
		Rows:          make([]ports.MetricRow, 0, len(a.order)),
		Statuses:      make([]ports.StatusCount, 0, len(a.statuses)),
	}

	var totalMs float64
	for _, key := range a.order {
		b := a.buckets[key]
		snap.TotalRequests += b.count
		totalMs += b.totalMs
		snap.Rows = append(snap.Rows, ports.MetricRow{
			Key:     key,
			Count:   b.count,
			TotalMs: round1(b.totalMs),
			AvgMs:   round1(b.totalMs / float64(b.count)),
			MinMs:   round1(b.minMs),
			MaxMs:   round1(b.maxMs),
		})
	}
	snap.TotalTimeMs = round1(totalMs)

	sort.SliceStable(snap.Rows, func(i, j int) bool {
		return snap.Rows[i].Count > snap.Rows[j].Count
	})

	for status, count := range a.statuses {
		snap.Statuses = append(snap.Statuses, ports.StatusCount{Status: status, Count: count})
	}
	sort.Slice(snap.Statuses, func(i, j int) bool {
		return snap.Statuses[i].Status < snap.Statuses[j].Status
	})

	return snap
}

// Reset clears activity counters. Uptime keeps counting from construction.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.buckets = make(map[string]*bucket)
	a.order = nil
	a.statuses = make(map[int]int64)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
