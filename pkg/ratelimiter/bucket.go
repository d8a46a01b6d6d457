package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Store keeps bucket state per key.
type Store interface {
	// ConsumeTokens takes n tokens from the bucket for key after refilling it.
	// A negative remaining count means the request must be denied.
	ConsumeTokens(ctx context.Context, key string, n int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// Result is the outcome of a single check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long a denied caller should wait, measured from now.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() || !r.ResetAt.After(now) {
		return 0
	}
	return r.ResetAt.Sub(now)
}

// Bucket applies one Config to every key in a Store.
type Bucket struct {
	store Store
	cfg   Config
}

// NewBucket returns ErrInvalidConfig for a disabled or invalid cfg.
func NewBucket(store Store, cfg Config) (*Bucket, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%w: burst must be positive, got %d", ErrInvalidConfig, cfg.Burst)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, cfg: cfg}, nil
}

func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

func (b *Bucket) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	return b.consume(ctx, key, n)
}

// Status refills the bucket for key and reports it without consuming.
func (b *Bucket) Status(ctx context.Context, key string) (Result, error) {
	return b.consume(ctx, key, 0)
}

func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}

func (b *Bucket) consume(ctx context.Context, key string, n int) (Result, error) {
	remaining, resetAt, err := b.store.ConsumeTokens(ctx, key, n, b.cfg)
	if err != nil {
		return Result{}, err
	}
	return Result{Limit: b.cfg.Burst, Remaining: remaining, ResetAt: resetAt}, nil
}
