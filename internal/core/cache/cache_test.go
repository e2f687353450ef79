package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache[string], *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	return New[string](WithClock(clock)), clock
}

func TestCache_SetThenGet(t *testing.T) {
	for _, ttl := range []time.Duration{time.Second, 5 * time.Second, time.Hour} {
		t.Run(ttl.String(), func(t *testing.T) {
			c, _ := newTestCache(t)

			c.Set("k", "v", ttl)
			got, ok := c.Get("k")

			assert.True(t, ok)
			assert.Equal(t, "v", got)
			assert.Equal(t, int64(1), c.Snapshot().Stats.Hits)
		})
	}
}

func TestCache_ExpiredEntryIsRemovedOnRead(t *testing.T) {
	c, clock := newTestCache(t)

	c.Set("k", "v", 10*time.Second)
	clock.Advance(10 * time.Second)

	got, ok := c.Get("k")
	assert.False(t, ok)
	assert.Empty(t, got)

	snap := c.Snapshot()
	assert.Equal(t, 0, snap.Items)
	assert.Equal(t, int64(1), snap.Stats.Expired)
	assert.Equal(t, int64(1), snap.Stats.Misses)

	// second read is a plain miss, expired does not move
	_, ok = c.Get("k")
	assert.False(t, ok)
	snap = c.Snapshot()
	assert.Equal(t, int64(1), snap.Stats.Expired)
	assert.Equal(t, int64(2), snap.Stats.Misses)
}

func TestCache_TTLClampedToMinimum(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{"zero", 0},
		{"negative", -5 * time.Second},
		{"sub_second", 10 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestCache(t)

			c.Set("k", "v", tt.ttl)
			_, ok := c.Get("k")
			assert.True(t, ok, "entry must survive an immediate read")

			clock.Advance(MinTTL - time.Millisecond)
			_, ok = c.Get("k")
			assert.True(t, ok)

			clock.Advance(time.Millisecond)
			_, ok = c.Get("k")
			assert.False(t, ok)
		})
	}
}

func TestCache_SetOverwrites(t *testing.T) {
	c, clock := newTestCache(t)

	c.Set("k", "old", time.Second)
	c.Set("k", "new", time.Minute)
	clock.Advance(2 * time.Second)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", got)
	assert.Equal(t, int64(2), c.Snapshot().Stats.Sets)
}

func TestCache_DeleteIsIdempotent(t *testing.T) {
	c, _ := newTestCache(t)

	c.Delete("missing")
	c.Set("k", "v", time.Minute)
	c.Delete("k")
	c.Delete("k")

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, int64(3), c.Snapshot().Stats.Deletes)
}

func TestCache_ClearKeepsStats(t *testing.T) {
	c, _ := newTestCache(t)

	c.Set("a", "1", time.Minute)
	c.Set("b", "2", time.Minute)
	_, _ = c.Get("a")
	_, _ = c.Get("nope")

	c.Clear()

	snap := c.Snapshot()
	assert.Equal(t, 0, snap.Items)
	assert.Equal(t, int64(2), snap.Stats.Sets)
	assert.Equal(t, int64(1), snap.Stats.Hits)
	assert.Equal(t, int64(1), snap.Stats.Misses)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			for j := 0; j < 100; j++ {
				c.Set(key, j, time.Minute)
				if v, ok := c.Get(key); ok {
					assert.GreaterOrEqual(t, v, 0)
				}
				if j%10 == 0 {
					c.Delete(key)
				}
			}
		}(i)
	}
	wg.Wait()

	snap := c.Snapshot()
	assert.Equal(t, int64(50*100), snap.Stats.Sets)
	assert.Equal(t, int64(50*100), snap.Stats.Hits+snap.Stats.Misses)
	assert.LessOrEqual(t, snap.Items, 5)
}

func TestCache_GetOrLoad_CoalescesConcurrentMisses(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	load := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "loaded", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetOrLoad(ctx, "posts:list:1:5", time.Minute, load)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, v := range results {
		assert.Equal(t, "loaded", v)
	}
}

func TestCache_GetOrLoad_ErrorsAreNotCached(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	boom := errors.New("backend down")

	_, err := c.GetOrLoad(ctx, "k", time.Minute, func(context.Context) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Snapshot().Items)

	v, err := c.GetOrLoad(ctx, "k", time.Minute, func(context.Context) (string, error) {
		return "ok", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestCache_GetOrLoad_HonoursCallerContext(t *testing.T) {
	c, _ := newTestCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	defer close(release)

	done := make(chan error, 1)
	go func() {
		_, err := c.GetOrLoad(ctx, "k", time.Minute, func(context.Context) (string, error) {
			<-release
			return "late", nil
		})
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("GetOrLoad did not return after cancellation")
	}
}

func TestCache_GetOrLoad_CancelledCallerDoesNotFailOthers(t *testing.T) {
	c, _ := newTestCache(t)

	var calls int32
	release := make(chan struct{})
	load := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-release:
			return "loaded", nil
		}
	}

	firstCtx, cancel := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := c.GetOrLoad(firstCtx, "stats:one:post-1", time.Minute, load)
		firstDone <- err
	}()
	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, time.Millisecond)

	type result struct {
		v   string
		err error
	}
	secondDone := make(chan result, 1)
	go func() {
		v, err := c.GetOrLoad(context.Background(), "stats:one:post-1", time.Minute, load)
		secondDone <- result{v, err}
	}()

	cancel()
	assert.ErrorIs(t, <-firstDone, context.Canceled)

	// give the second caller time to join the in-flight load
	time.Sleep(20 * time.Millisecond)
	close(release)

	select {
	case r := <-secondDone:
		require.NoError(t, r.err)
		assert.Equal(t, "loaded", r.v)
	case <-time.After(time.Second):
		t.Fatal("second caller never returned")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	v, ok := c.Get("stats:one:post-1")
	assert.True(t, ok)
	assert.Equal(t, "loaded", v)
}

func TestFetch_TypedValues(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := New[any](WithClock(clock))
	ctx := context.Background()

	calls := 0
	load := func(context.Context) (map[string]int, error) {
		calls++
		return map[string]int{"views_total": 3}, nil
	}

	first, err := Fetch(ctx, c, "stats:one:p1", 5*time.Second, load)
	require.NoError(t, err)
	second, err := Fetch(ctx, c, "stats:one:p1", 5*time.Second, load)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)

	// a value of another type under the same key is replaced
	c.Set("stats:one:p2", "not a map", time.Minute)
	got, err := Fetch(ctx, c, "stats:one:p2", 5*time.Second, load)
	require.NoError(t, err)
	assert.Equal(t, 3, got["views_total"])
	assert.Equal(t, 2, calls)
}
