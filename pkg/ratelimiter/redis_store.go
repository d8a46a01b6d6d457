package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// consumeScript refills and drains a bucket atomically using the server clock.
// It returns the remaining tokens (negative when denied) and the next refill
// time in unix milliseconds. A denied call does not change the stored state.
var consumeScript = redis.NewScript(`
local burst = tonumber(ARGV[1])
local refill = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local n = tonumber(ARGV[4])

local t = redis.call('TIME')
local now = tonumber(t[1]) * 1000 + math.floor(tonumber(t[2]) / 1000)

local state = redis.call('HMGET', KEYS[1], 'tokens', 'last')
local tokens = tonumber(state[1])
local last = tonumber(state[2])
if tokens == nil or last == nil then
	tokens = burst
	last = now
end

local elapsed = math.floor((now - last) / interval)
if elapsed > 0 then
	tokens = math.min(burst, tokens + elapsed * refill)
	last = last + elapsed * interval
end
if tokens >= burst then
	last = now
end

local remaining = tokens - n
if remaining >= 0 then
	tokens = remaining
end

redis.call('HSET', KEYS[1], 'tokens', tokens, 'last', last)
redis.call('PEXPIRE', KEYS[1], (math.ceil(burst / refill) + 1) * interval)
return {remaining, last + interval}
`)

// RedisStore keeps buckets in Redis hashes so several processes share limits.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore stores buckets under prefix+key.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) ConsumeTokens(ctx context.Context, key string, n int, cfg Config) (int, time.Time, error) {
	interval := max(1, cfg.Interval.Milliseconds())
	res, err := consumeScript.Run(ctx, s.client, []string{s.prefix + key}, cfg.Burst, cfg.Refill, interval, n).Int64Slice()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, ErrStoreUnavailable
	}
	return int(res[0]), time.UnixMilli(res[1]), nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
