package infrastructure

import (
	"context"
	"time"

	"blogapi.app/internal/ports"
	"github.com/jonboulle/clockwork"
)

// LedgerReloader periodically reloads a views ledger so pairs written by other
// processes sharing the same log become visible here.
type LedgerReloader struct {
	ledger   ports.UniqueEventLedger
	interval time.Duration
	limit    int
	clock    clockwork.Clock
	logger   ports.Logger
}

// LedgerReloaderParams holds parameters for creating a reloader
type LedgerReloaderParams struct {
	Ledger    ports.UniqueEventLedger
	Interval  time.Duration
	LoadLimit int
	Clock     clockwork.Clock
	Logger    ports.Logger
}

// NewLedgerReloader creates a reloader. It does nothing until Run is called.
func NewLedgerReloader(params LedgerReloaderParams) *LedgerReloader {
	clock := params.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &LedgerReloader{
		ledger:   params.Ledger,
		interval: params.Interval,
		limit:    params.LoadLimit,
		clock:    clock,
		logger:   params.Logger,
	}
}

// Run reloads on every tick until ctx is done. A non-positive interval returns immediately.
func (r *LedgerReloader) Run(ctx context.Context) {
	if r.interval <= 0 || r.ledger == nil {
		return
	}

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("Views ledger reloader started", ports.F("interval", r.interval.String()))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Views ledger reloader stopped")
			return
		case <-ticker.Chan():
			r.reload(ctx)
		}
	}
}

func (r *LedgerReloader) reload(ctx context.Context) {
	start := r.clock.Now()
	if err := r.ledger.Load(ctx, r.limit); err != nil {
		r.logger.Warn("Views ledger reload failed", ports.F("error", err))
		return
	}
	r.logger.Debug("Views ledger reloaded", ports.F("duration_ms", r.clock.Since(start).Milliseconds()))
}
