package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"blogapi.app/internal/adapters/api"
	"blogapi.app/internal/adapters/infrastructure"
	"blogapi.app/internal/config"
	"blogapi.app/internal/core/cooldown"
	"blogapi.app/internal/core/engagement"
	"blogapi.app/internal/core/stats"
	"blogapi.app/internal/ports"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

type Application struct {
	config *config.Config
	clock  clockwork.Clock

	// Use Cases
	statsUseCase      *stats.UseCase
	engagementUseCase *engagement.UseCase
	cooldownGate      *cooldown.Gate

	// Adapters
	healthChecker *infrastructure.SystemHealthChecker
	httpServer    *http.Server
	router        *gin.Engine

	// Infrastructure
	deps     *DependencyContainer
	ports    *ports.ApplicationPorts
	stopChan chan struct{}
	stopOnce sync.Once
	workers  sync.WaitGroup
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config:   cfg,
		clock:    deps.clock,
		deps:     deps,
		ports:    deps.ApplicationPorts(),
		stopChan: make(chan struct{}),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	statsUseCase, err := stats.NewUseCase(stats.UseCaseDependencies{
		Repo:     a.ports.StatsRepository,
		Comments: a.ports.CommentRepository,
		Cache:    a.deps.Cache(),
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create stats use case: %w", err)
	}
	a.statsUseCase = statsUseCase

	gate, err := cooldown.NewGate(cooldown.GateDependencies{
		Comments: a.ports.CommentRepository,
		Contacts: a.ports.ContactRepository,
		Config:   a.ports.ConfigProvider,
		Clock:    a.clock,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create cooldown gate: %w", err)
	}
	a.cooldownGate = gate

	engagementUseCase, err := engagement.NewUseCase(engagement.UseCaseDependencies{
		Ledger:    a.ports.ViewsLedger,
		Stats:     a.statsUseCase,
		Cooldowns: a.cooldownGate,
		Comments:  a.ports.CommentRepository,
		Contacts:  a.ports.ContactRepository,
		Captcha:   a.ports.CaptchaVerifier,
		Email:     a.ports.EmailProvider,
		Metrics:   a.deps.ViewMetrics(),
		Config:    a.ports.ConfigProvider,
		Clock:     a.clock,
		Logger:    a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create engagement use case: %w", err)
	}
	a.engagementUseCase = engagementUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		Metrics: a.ports.MetricsReader,
		Cache:   a.ports.CacheInspector,
		Logger:  a.ports.Logger,
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers:       a.ports.HealthCheckers,
		ConfigProvider: a.ports.ConfigProvider,
	})
	a.healthChecker = systemHealthChecker

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:                a.config.Server.Port,
			AdminToken:          a.config.Server.AdminToken,
			SubmitRatePerMinute: a.config.Submit.RatePerMinute,
			SubmitBurst:         a.config.Submit.Burst,
		},
		EngagementUseCase: a.engagementUseCase,
		StatsUseCase:      a.statsUseCase,
		AdminCollector:    metricsCollector,
		HealthChecker:     systemHealthChecker,
		MetricsHandler:    a.deps.MetricsHandler(),
		Clock:             a.clock,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// LoadLedger replays the views ledger. The server must not accept views before it succeeds.
func (a *Application) LoadLedger(ctx context.Context) error {
	slog.Info("Loading views ledger...", "type", a.config.Views.LedgerType.String(), "limit", a.config.Views.LoadLimit)
	if err := a.ports.ViewsLedger.Load(ctx, a.config.Views.LoadLimit); err != nil {
		return fmt.Errorf("load views ledger: %w", err)
	}
	if log := a.deps.Ledger().Log; log != nil {
		slog.Info("Views ledger loaded", "pairs", log.Len())
	}
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if err := a.LoadLedger(ctx); err != nil {
		return err
	}

	a.logStartupHealth(ctx)

	// Other processes may append to a shared file log
	if a.config.Views.LedgerType == config.LedgerTypeFile && a.config.Views.ReloadInterval() > 0 {
		a.startReloader(ctx)
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// logStartupHealth reports unreachable dependencies without blocking startup;
// reads fail open and the backend may come up later.
func (a *Application) logStartupHealth(ctx context.Context) {
	results := a.healthChecker.CheckAll(ctx)
	if infrastructure.AllHealthy(results) {
		slog.Info("All components healthy")
		return
	}
	for name, status := range results {
		if status.Status != infrastructure.StatusHealthy {
			slog.Warn("Component unhealthy at startup", "component", name, "error", status.Error)
		}
	}
}

func (a *Application) startReloader(ctx context.Context) {
	reloader := infrastructure.NewLedgerReloader(infrastructure.LedgerReloaderParams{
		Ledger:    a.ports.ViewsLedger,
		Interval:  a.config.Views.ReloadInterval(),
		LoadLimit: a.config.Views.LoadLimit,
		Clock:     a.clock,
		Logger:    a.ports.Logger,
	})

	runCtx, cancel := context.WithCancel(ctx)
	a.workers.Add(2)
	go func() {
		defer a.workers.Done()
		reloader.Run(runCtx)
	}()
	go func() {
		defer a.workers.Done()
		defer cancel()
		select {
		case <-runCtx.Done():
		case <-a.stopChan:
		}
	}()
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.stopOnce.Do(func() { close(a.stopChan) })

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.workers.Wait()

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error closing views ledger", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetStatsUseCase returns the stats use case for testing
func (a *Application) GetStatsUseCase() *stats.UseCase {
	return a.statsUseCase
}

// GetEngagementUseCase returns the engagement use case for testing
func (a *Application) GetEngagementUseCase() *engagement.UseCase {
	return a.engagementUseCase
}
