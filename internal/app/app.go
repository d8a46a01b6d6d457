package app

import (
	"context"
	"io"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/urlkit/pkg/clientip"
	"github.com/dmitrymomot/urlkit/pkg/logger"
	"github.com/dmitrymomot/urlkit/pkg/ratelimiter"
	"github.com/dmitrymomot/urlkit/pkg/redis"
	"github.com/dmitrymomot/urlkit/pkg/requestid"
	"github.com/dmitrymomot/urlkit/pkg/sanitizer"
)

// App holds the dependencies shared by the CLI and the HTTP API.
type App struct {
	Config Config
	Log    *slog.Logger
	Filter *sanitizer.TagFilter
	// Limiter is nil when rate limiting is disabled.
	Limiter *ratelimiter.Bucket
	// Redis backs the limiter when REDIS_URL is set. It is nil otherwise.
	Redis *goredis.Client

	store *ratelimiter.MemoryStore
}

// New builds the logger and tag filter described by cfg. Logs go to out.
// With rate limiting enabled it also connects to Redis when configured, so ctx
// bounds that connection attempt.
func New(ctx context.Context, cfg Config, out io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{
		Config: cfg,
		Log:    NewLogger(cfg, out),
		Filter: sanitizer.NewTagFilter(sanitizer.WithWhitelistCacheSize(cfg.WhitelistCacheSize)),
	}
	if cfg.RateLimit.Enabled() {
		store, err := a.limiterStore(ctx)
		if err != nil {
			return nil, err
		}
		limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Limiter = limiter
	}
	return a, nil
}

func (a *App) limiterStore(ctx context.Context) (ratelimiter.Store, error) {
	if !a.Config.Redis.Enabled() {
		a.store = ratelimiter.NewMemoryStore()
		return a.store, nil
	}
	client, err := redis.Connect(ctx, a.Config.Redis)
	if err != nil {
		return nil, err
	}
	a.Redis = client
	a.Log.InfoContext(ctx, "rate limits shared through redis", logger.Component("app"))
	return ratelimiter.NewRedisStore(client, a.Config.Name+":ratelimit:"), nil
}

// Close releases background resources. It is safe to call more than once.
func (a *App) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
}

// NewLogger applies the environment defaults first, then the explicit level
// and format overrides. cfg must be valid.
func NewLogger(cfg Config, out io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithOutput(out),
		logger.WithContextExtractors(requestid.LogExtractor, clientip.LogExtractor),
	}
	if cfg.LogLevel != "" {
		if l, err := logger.ParseLevel(cfg.LogLevel); err == nil {
			opts = append(opts, logger.WithLevel(l))
		}
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}

// Whitelist returns allowed, or the configured default when allowed is empty.
func (a *App) Whitelist(allowed string) string {
	if allowed == "" {
		return a.Config.DefaultWhitelist
	}
	return allowed
}
