package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type bucketState struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore is a Store backed by a map. Buckets idle for longer than the
// stale window are dropped by a background sweeper.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucketState

	now           func() time.Time
	sweepInterval time.Duration
	staleAfter    time.Duration
	stop          chan struct{}
	stopOnce      sync.Once
}

type MemoryStoreOption func(*MemoryStore)

// WithSweepInterval sets how often idle buckets are removed. Zero disables
// the sweeper.
func WithSweepInterval(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) { s.sweepInterval = d }
}

// WithStaleAfter sets how long a bucket may stay idle before it is removed.
func WithStaleAfter(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) { s.staleAfter = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) { s.now = now }
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		buckets:       make(map[string]*bucketState),
		now:           time.Now,
		sweepInterval: 5 * time.Minute,
		staleAfter:    time.Hour,
		stop:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sweepInterval > 0 {
		go s.sweep()
	}
	return s
}

func (s *MemoryStore) ConsumeTokens(_ context.Context, key string, n int, cfg Config) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucketState{tokens: cfg.Burst, lastRefill: now, lastAccess: now}
		s.buckets[key] = b
	}

	// Capped so a long idle period cannot overflow the multiplication.
	maxIntervals := int64(cfg.Burst/cfg.Refill + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/cfg.Interval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*cfg.Refill, cfg.Burst)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * cfg.Interval)
		if b.tokens == cfg.Burst {
			b.lastRefill = now
		}
	}

	// A denied request leaves the bucket untouched.
	remaining := b.tokens - n
	if remaining >= 0 {
		b.tokens = remaining
	}
	b.lastAccess = now

	return remaining, b.lastRefill.Add(cfg.Interval), nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
	return nil
}

// Len reports how many buckets are tracked.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// RemoveStale drops buckets idle for longer than the stale window.
func (s *MemoryStore) RemoveStale() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, b := range s.buckets {
		if now.Sub(b.lastAccess) > s.staleAfter {
			delete(s.buckets, key)
		}
	}
}

// Close stops the sweeper. It is safe to call more than once.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.RemoveStale()
		case <-s.stop:
			return
		}
	}
}
