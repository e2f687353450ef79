package infrastructure

import (
	"context"
	"os"

	"blogapi.app/internal/ports"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// PingFunc checks a dependency and returns nil when it answers
type PingFunc func(ctx context.Context) error

// PingHealthChecker reports a component healthy when its ping succeeds.
// It covers the PocketBase backend and the Redis ledger.
type PingHealthChecker struct {
	component string
	ping      PingFunc
	details   map[string]interface{}
}

// NewPingHealthChecker creates a checker for component. details are copied into every status.
func NewPingHealthChecker(component string, ping PingFunc, details map[string]interface{}) *PingHealthChecker {
	return &PingHealthChecker{component: component, ping: ping, details: details}
}

// Check runs the ping
func (p *PingHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: p.component,
		Status:    StatusHealthy,
		Details:   make(map[string]interface{}, len(p.details)+1),
	}
	for k, v := range p.details {
		status.Details[k] = v
	}

	if p.ping == nil {
		status.Status = StatusUnhealthy
		status.Error = p.component + " is not available"
		status.Details["connected"] = false
		return status
	}

	if err := p.ping(ctx); err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		status.Details["connected"] = false
		return status
	}

	status.Details["connected"] = true
	return status
}

// FileLedgerHealthChecker reports the in-memory seen-set size and the log file state
type FileLedgerHealthChecker struct {
	ledger interface{ Len() int }
	path   string
}

// NewFileLedgerHealthChecker creates a checker for the file-backed views ledger
func NewFileLedgerHealthChecker(ledger interface{ Len() int }, path string) *FileLedgerHealthChecker {
	return &FileLedgerHealthChecker{ledger: ledger, path: path}
}

// Check reports unhealthy when the log file cannot be stat'ed
func (f *FileLedgerHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "views_ledger",
		Status:    StatusHealthy,
		Details: map[string]interface{}{
			"type": "file",
			"path": f.path,
		},
	}

	if f.ledger != nil {
		status.Details["pairs"] = f.ledger.Len()
	}

	info, err := os.Stat(f.path)
	if err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Details["size_bytes"] = info.Size()
	return status
}
