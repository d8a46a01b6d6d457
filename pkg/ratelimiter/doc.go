// Package ratelimiter implements token bucket rate limiting with HTTP
// middleware. Buckets live in a MemoryStore for a single process or in a
// RedisStore when several replicas must share one limit.
//
// A bucket holds up to Burst tokens and gains Refill tokens every Interval.
// Each request consumes one token; once the bucket is empty requests are
// denied until the next refill.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Burst:    20,
//		Refill:   5,
//		Interval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	mw := ratelimiter.Middleware(bucket, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	}, nil)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response and Retry-After on denied ones.
package ratelimiter
