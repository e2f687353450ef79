package infrastructure

import (
	"context"
	"sync"
	"time"

	"blogapi.app/internal/ports"
)

const defaultCheckTimeout = 3 * time.Second

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
	timeout        time.Duration
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	Checkers       map[string]ports.HealthChecker
	ConfigProvider ports.ConfigProvider
	// Timeout bounds each individual check. Zero means 3s.
	Timeout time.Duration
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	return &SystemHealthChecker{
		checkers:       config.Checkers,
		configProvider: config.ConfigProvider,
		timeout:        timeout,
	}
}

// CheckAll runs every checker concurrently and adds a config summary
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for name, checker := range s.checkers {
		if checker == nil {
			continue
		}
		wg.Add(1)
		go func(name string, checker ports.HealthChecker) {
			defer wg.Done()
			checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			status := checker.Check(checkCtx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	if s.configProvider != nil {
		views := s.configProvider.GetViewsConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    StatusHealthy,
			Details: map[string]interface{}{
				"views_ledger":  views.LedgerType,
				"views_per_day": views.PerDay,
				"backend_url":   s.configProvider.GetBackendConfig().BaseURL,
			},
		}
	}

	return results
}

// AllHealthy reports whether every status in results is healthy
func AllHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != StatusHealthy {
			return false
		}
	}
	return true
}

var _ ports.SystemHealthChecker = (*SystemHealthChecker)(nil)
