package infrastructure

import (
	"context"
	"fmt"
	"testing"
	"time"

	"blogapi.app/internal/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedgerReloader_ReloadsOnTick(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ledger := mocks.NewUniqueEventLedger(t)

	loaded := make(chan struct{}, 2)
	ledger.EXPECT().Load(mock.Anything, 500).Run(func(context.Context, int) { loaded <- struct{}{} }).Return(nil).Once()
	ledger.EXPECT().Load(mock.Anything, 500).Run(func(context.Context, int) { loaded <- struct{}{} }).Return(fmt.Errorf("disk gone")).Once()

	reloader := NewLedgerReloader(LedgerReloaderParams{
		Ledger:    ledger,
		Interval:  time.Minute,
		LoadLimit: 500,
		Clock:     clock,
		Logger:    mocks.NewLoggerAllowingAll(t),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		reloader.Run(ctx)
		close(done)
	}()

	for i := 0; i < 2; i++ {
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		clock.Advance(time.Minute)
		select {
		case <-loaded:
		case <-time.After(2 * time.Second):
			t.Fatal("ledger was not reloaded")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reloader did not stop")
	}
}

func TestLedgerReloader_DisabledInterval(t *testing.T) {
	reloader := NewLedgerReloader(LedgerReloaderParams{
		Ledger: mocks.NewUniqueEventLedger(t),
		Logger: mocks.NewLoggerAllowingAll(t),
	})

	done := make(chan struct{})
	go func() {
		reloader.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return immediately when disabled")
	}
}
