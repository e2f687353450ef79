package infrastructure

import (
	"strconv"
	"time"

	"blogapi.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Bucketer maps a raw backend call to its low-cardinality bucket label
type Bucketer interface {
	BucketKey(method, path string) string
}

// PrometheusRecorder mirrors backend calls and unique-view outcomes into
// Prometheus collectors. It implements CallRecorder and ViewMetrics.
type PrometheusRecorder struct {
	bucketer Bucketer

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	views    *prometheus.CounterVec
}

// PrometheusRecorderParams holds parameters for creating the recorder
type PrometheusRecorderParams struct {
	// Registerer defaults to prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
	Bucketer   Bucketer
	// Cache, when set, is exported as blog_cache_items
	Cache ports.CacheInspector
}

// NewPrometheusRecorder registers the collectors and returns the recorder
func NewPrometheusRecorder(params PrometheusRecorderParams) *PrometheusRecorder {
	reg := params.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	r := &PrometheusRecorder{
		bucketer: params.Bucketer,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blog_backend_requests_total",
				Help: "The total number of backend calls by bucket and status",
			},
			[]string{"bucket", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blog_backend_request_duration_seconds",
				Help:    "Backend call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"bucket"},
		),
		views: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blog_unique_views_total",
				Help: "Unique view attempts by result",
			},
			[]string{"result"},
		),
	}

	if params.Cache != nil {
		cache := params.Cache
		factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "blog_cache_items",
				Help: "Entries currently held by the request cache",
			},
			func() float64 { return float64(cache.Snapshot().Items) },
		)
	}

	return r
}

// Record implements ports.CallRecorder
func (r *PrometheusRecorder) Record(method, path string, status int, latency time.Duration) {
	bucket := method + " " + path
	if r.bucketer != nil {
		bucket = r.bucketer.BucketKey(method, path)
	}
	r.requests.WithLabelValues(bucket, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(bucket).Observe(latency.Seconds())
}

// RecordView implements ports.ViewMetrics
func (r *PrometheusRecorder) RecordView(result string) {
	r.views.WithLabelValues(result).Inc()
}

var (
	_ ports.CallRecorder = (*PrometheusRecorder)(nil)
	_ ports.ViewMetrics  = (*PrometheusRecorder)(nil)
)
