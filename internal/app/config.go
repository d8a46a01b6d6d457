package app

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/urlkit/pkg/config"
	"github.com/dmitrymomot/urlkit/pkg/httpserver"
	"github.com/dmitrymomot/urlkit/pkg/logger"
	"github.com/dmitrymomot/urlkit/pkg/ratelimiter"
	"github.com/dmitrymomot/urlkit/pkg/redis"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the process configuration read from the environment.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"urlkit"`

	// LogLevel and LogFormat override the environment defaults when set.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	// DefaultWhitelist is used by strip-tags when a request names no tags.
	DefaultWhitelist   string `env:"DEFAULT_WHITELIST"`
	WhitelistCacheSize int    `env:"WHITELIST_CACHE_SIZE" envDefault:"64"`

	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	// TrustedIPHeaders lists proxy headers, in order, that carry the client IP.
	// Empty means RemoteAddr only.
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
	Redis     redis.Config
}

// LoadConfig reads Config from the environment after loading envFiles.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := config.LoadEnv(envFiles...); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the env parser cannot.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}
	switch logger.Format(c.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return errors.Join(ErrInvalidConfig, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", logger.FormatJSON, logger.FormatText, c.LogFormat))
	}
	if err := c.RateLimit.Validate(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
