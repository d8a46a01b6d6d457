package ratelimiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/urlkit/pkg/ratelimiter"
)

// clock is a manually advanced time source.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, c *clock, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore) {
	t.Helper()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(c.Now), ratelimiter.WithSweepInterval(0))
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, store
}

func TestConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     ratelimiter.Config
		enabled bool
		wantErr bool
	}{
		{name: "disabled", cfg: ratelimiter.Config{}, enabled: false},
		{name: "disabled ignores other fields", cfg: ratelimiter.Config{Refill: -1}, enabled: false},
		{name: "valid", cfg: ratelimiter.Config{Burst: 5, Refill: 1, Interval: time.Second}, enabled: true},
		{name: "zero refill", cfg: ratelimiter.Config{Burst: 5, Interval: time.Second}, enabled: true, wantErr: true},
		{name: "zero interval", cfg: ratelimiter.Config{Burst: 5, Refill: 1}, enabled: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.enabled, tt.cfg.Enabled())
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}

	_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithSweepInterval(0)), ratelimiter.Config{})
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
}

func TestBucket(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := ratelimiter.Config{Burst: 3, Refill: 1, Interval: time.Second}

	t.Run("allows burst then denies", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, newClock(), cfg)

		for i := range 3 {
			res, err := b.Allow(ctx, "k")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, 2-i, res.Remaining)
			assert.Equal(t, 3, res.Limit)
		}

		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Equal(t, -1, res.Remaining)

		// Denials do not consume.
		res, err = b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("refills per interval up to burst", func(t *testing.T) {
		t.Parallel()
		c := newClock()
		b, _ := newBucket(t, c, cfg)

		_, err := b.AllowN(ctx, "k", 3)
		require.NoError(t, err)

		c.Advance(1500 * time.Millisecond)
		res, err := b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Remaining)
		assert.Equal(t, c.Now().Add(500*time.Millisecond), res.ResetAt)

		c.Advance(time.Hour)
		res, err = b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, newClock(), cfg)

		_, err := b.AllowN(ctx, "a", 3)
		require.NoError(t, err)
		res, err := b.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()
		b, store := newBucket(t, newClock(), cfg)

		_, err := b.AllowN(ctx, "k", 3)
		require.NoError(t, err)
		require.NoError(t, b.Reset(ctx, "k"))
		assert.Zero(t, store.Len())

		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("invalid token count", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, newClock(), cfg)
		_, err := b.AllowN(ctx, "k", 0)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})
}

func TestMemoryStoreRemoveStale(t *testing.T) {
	t.Parallel()

	c := newClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithClock(c.Now),
		ratelimiter.WithSweepInterval(0),
		ratelimiter.WithStaleAfter(time.Minute),
	)
	defer store.Close()
	store.Close()

	cfg := ratelimiter.Config{Burst: 1, Refill: 1, Interval: time.Second}
	_, _, err := store.ConsumeTokens(context.Background(), "old", 1, cfg)
	require.NoError(t, err)
	c.Advance(2 * time.Minute)
	_, _, err = store.ConsumeTokens(context.Background(), "new", 1, cfg)
	require.NoError(t, err)

	store.RemoveStale()
	assert.Equal(t, 1, store.Len())
}

func TestResultRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Now()
	assert.Zero(t, ratelimiter.Result{Remaining: 0, ResetAt: now.Add(time.Second)}.RetryAfter(now))
	assert.Equal(t, time.Second, ratelimiter.Result{Remaining: -1, ResetAt: now.Add(time.Second)}.RetryAfter(now))
	assert.Zero(t, ratelimiter.Result{Remaining: -1, ResetAt: now.Add(-time.Second)}.RetryAfter(now))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, newClock(), ratelimiter.Config{Burst: 2, Refill: 1, Interval: time.Minute})

	var denied int
	mw := ratelimiter.Middleware(b, func(r *http.Request) string {
		return r.Header.Get("X-Client")
	}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		denied++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(client string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if client != "" {
			req.Header.Set("X-Client", client)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := do("a")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

	assert.Equal(t, http.StatusNoContent, do("a").Code)

	rec = do("a")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, 1, denied)

	// No key, no limit.
	for range 5 {
		rec = do("")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestMiddlewareDefaultDenied(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, newClock(), ratelimiter.Config{Burst: 1, Refill: 1, Interval: time.Minute})
	h := ratelimiter.Middleware(b, func(*http.Request) string { return "k" }, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
