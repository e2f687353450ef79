package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"blogapi.app/internal/adapters/infrastructure"
	"blogapi.app/internal/adapters/pocketbase"
	"blogapi.app/internal/adapters/storage"
	"blogapi.app/internal/config"
	"blogapi.app/internal/core/cache"
	"blogapi.app/internal/core/metrics"
	"blogapi.app/internal/ports"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type DependencyContainer struct {
	config *config.Config
	clock  clockwork.Clock

	cache      *cache.Cache[any]
	aggregator *metrics.Aggregator
	recorder   *infrastructure.PrometheusRecorder
	registry   *prometheus.Registry
	client     *pocketbase.Client
	ledger     *storage.Ledger
	ports      *ports.ApplicationPorts
}

// DependencyOptions overrides parts of the container, mainly for tests
type DependencyOptions struct {
	Clock clockwork.Clock
	// Transport is the base round tripper for backend calls. Nil means http.DefaultTransport.
	Transport http.RoundTripper
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	container := &DependencyContainer{
		config: cfg,
		clock:  clock,
	}

	if err := container.initializePorts(opts.Transport); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(base http.RoundTripper) error {
	slog.Info("Initializing ports...")

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())

	// Backend calls are additionally written to their own file when configured
	var backendLogger ports.Logger
	if path := c.config.Backend.LogFilePath; path != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(infrastructure.FileLoggerParams{
			Path:      path,
			Component: "backend",
			Clock:     c.clock,
		})
		if err != nil {
			slog.Warn("Failed to create backend file logger, continuing without it", "error", err)
		} else {
			backendLogger = fileLogger
			slog.Info("Backend call logging enabled", "path", path)
		}
	}

	c.cache = cache.New[any](cache.WithClock(c.clock))
	c.aggregator = metrics.NewAggregator(metrics.WithClock(c.clock))

	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.recorder = infrastructure.NewPrometheusRecorder(infrastructure.PrometheusRecorderParams{
		Registerer: c.registry,
		Bucketer:   c.aggregator,
		Cache:      c.cache,
	})

	recorders := []ports.CallRecorder{c.aggregator, c.recorder}
	if backendLogger != nil {
		recorders = append(recorders, infrastructure.NewBackendCallLogger(backendLogger))
	}
	transport := pocketbase.NewInstrumentedTransport(
		base,
		infrastructure.NewFanOutRecorder(logger, recorders...),
		c.clock,
		logger,
	)

	clientLogger := logger
	if backendLogger != nil {
		clientLogger = infrastructure.NewMultiLogger(logger, backendLogger)
	}

	client, err := pocketbase.NewClient(pocketbase.ClientParams{
		BaseURL:   c.config.Backend.URL,
		Token:     c.config.Backend.Token,
		Timeout:   c.config.Backend.Timeout(),
		Transport: transport,
		Logger:    clientLogger,
	})
	if err != nil {
		return fmt.Errorf("create backend client: %w", err)
	}
	c.client = client

	ledger, err := storage.NewLedgerFactory(c.clock, logger).CreateLedger(c.config)
	if err != nil {
		slog.Error("Failed to create views ledger", "error", err)
		return fmt.Errorf("create views ledger: %w", err)
	}
	c.ledger = ledger
	slog.Info("Views ledger initialized", "type", ledger.Type.String())

	c.ports = &ports.ApplicationPorts{
		RecordStore:       client,
		StatsRepository:   pocketbase.NewStatsRepositoryAdapter(client, c.config.Backend.PostStatsCollection),
		CommentRepository: pocketbase.NewCommentRepositoryAdapter(client, c.config.Backend.CommentsCollection),
		ContactRepository: pocketbase.NewContactMessageRepositoryAdapter(client, c.config.Backend.ContactMessagesCollection),

		CacheInspector: c.cache,
		MetricsReader:  c.aggregator,
		ViewsLedger:    ledger,

		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         logger,
		HealthCheckers: c.healthCheckers(),
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) healthCheckers() map[string]ports.HealthChecker {
	checkers := map[string]ports.HealthChecker{
		"backend": infrastructure.NewPingHealthChecker("backend", c.client.Health, map[string]interface{}{
			"url": c.config.Backend.URL,
		}),
	}

	switch c.ledger.Type {
	case config.LedgerTypeFile:
		checkers["views_ledger"] = infrastructure.NewFileLedgerHealthChecker(c.ledger.Log, c.ledger.FileLog.Path())
	case config.LedgerTypeDatabase:
		checkers["database"] = infrastructure.NewDatabaseHealthChecker(c.ledger.DB)
	case config.LedgerTypeRedis:
		checkers["views_ledger"] = infrastructure.NewPingHealthChecker("views_ledger", func(ctx context.Context) error {
			return c.ledger.Ping(ctx)
		}, map[string]interface{}{
			"type": "redis",
			"addr": c.config.Redis.Addr,
		})
	}
	return checkers
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Cache returns the request cache shared by the stats use case and the admin surface
func (c *DependencyContainer) Cache() *cache.Cache[any] {
	return c.cache
}

// ViewMetrics returns the Prometheus unique-view counter
func (c *DependencyContainer) ViewMetrics() ports.ViewMetrics {
	return c.recorder
}

// MetricsHandler serves the container's Prometheus registry
func (c *DependencyContainer) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Ledger returns the views ledger with its owned resources
func (c *DependencyContainer) Ledger() *storage.Ledger {
	return c.ledger
}

// Cleanup releases the ledger's file, connection pool or client
func (c *DependencyContainer) Cleanup() error {
	if c.ledger == nil {
		return nil
	}
	return c.ledger.Close()
}
