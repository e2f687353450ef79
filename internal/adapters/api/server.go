// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"blogapi.app/internal/core/engagement"
	"blogapi.app/internal/core/stats"
	"blogapi.app/internal/ports"
	"blogapi.app/pkg/errors"
	"blogapi.app/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
	// AdminToken protects the admin surface when set
	AdminToken          string
	SubmitRatePerMinute int
	SubmitBurst         int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router            *gin.Engine
	config            ServerConfig
	engagementUseCase EngagementUseCase
	statsUseCase      StatsUseCase
	adminCollector    AdminCollector
	healthChecker     ports.SystemHealthChecker
	submitGuard       *submissionGuard
	metricsHandler    http.Handler
}

// Use case interfaces that the HTTP adapter depends on
type EngagementUseCase interface {
	CountView(ctx context.Context, params engagement.CountViewParams) (bool, error)
	SubmitComment(ctx context.Context, params engagement.CommentParams) error
	SubmitContact(ctx context.Context, params engagement.ContactParams) error
}

type StatsUseCase interface {
	Get(ctx context.Context, postID string) stats.PostStats
	GetMap(ctx context.Context, postIDs []string) map[string]stats.PostStats
	TopBy(ctx context.Context, field stats.StatField, limit int) ([]stats.PostStats, error)
}

type AdminCollector interface {
	BackendMetrics() ports.MetricsSnapshot
	ResetBackendMetrics()
	CacheStats() ports.CacheSnapshot
	ClearCache()
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config            ServerConfig
	EngagementUseCase EngagementUseCase
	StatsUseCase      StatsUseCase
	AdminCollector    AdminCollector
	HealthChecker     ports.SystemHealthChecker
	// MetricsHandler serves /metrics. Nil means the default Prometheus registry.
	MetricsHandler http.Handler
	Clock          clockwork.Clock
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	registerValidatorsOnce.Do(registerValidators)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	server := &HTTPServerAdapter{
		router:            router,
		config:            opts.Config,
		engagementUseCase: opts.EngagementUseCase,
		statsUseCase:      opts.StatsUseCase,
		adminCollector:    opts.AdminCollector,
		healthChecker:     opts.HealthChecker,
		submitGuard:       newSubmissionGuard(opts.Config.SubmitRatePerMinute, opts.Config.SubmitBurst, opts.Clock),
		metricsHandler:    metricsHandler,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.EngagementUseCase == nil {
		return errors.NewValidationError("engagement use case is required")
	}
	if opts.StatsUseCase == nil {
		return errors.NewValidationError("stats use case is required")
	}
	if opts.AdminCollector == nil {
		return errors.NewValidationError("admin collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api", visitorID())
	{
		api.POST("/posts/:id/views", s.countView)
		api.GET("/posts/:id/stats", s.getPostStats)
		api.POST("/posts/:id/comments", s.submitGuard.middleware(s), s.submitComment)
		api.GET("/stats", s.getStatsMap)
		api.GET("/stats/top", s.getTopStats)
		api.POST("/contact", s.submitGuard.middleware(s), s.submitContact)
	}

	admin := s.router.Group("/admin", adminAuth(s.config.AdminToken))
	{
		admin.GET("/metrics.json", s.getBackendMetrics)
		admin.POST("/metrics/reset", s.resetBackendMetrics)
		admin.GET("/cache.json", s.getCacheStats)
		admin.POST("/cache/clear", s.clearCache)
	}

	s.router.GET("/health", s.health)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by request structs
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("statfield", validateStatField); err != nil {
			slog.Warn("Failed to register statfield validator", "error", err)
		}
	}
}

// validateStatField validates the sortable stats field name
func validateStatField(fl validator.FieldLevel) bool {
	return validation.IsValidStatField(fl.Field().String())
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
