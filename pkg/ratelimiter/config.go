package ratelimiter

import (
	"fmt"
	"time"
)

// Config describes a token bucket. A zero Burst disables limiting.
type Config struct {
	Burst    int           `env:"RATE_LIMIT_BURST" envDefault:"0"`
	Refill   int           `env:"RATE_LIMIT_REFILL" envDefault:"1"`
	Interval time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"1s"`
}

func (c Config) Enabled() bool {
	return c.Burst > 0
}

// Validate reports the first non-positive field of an enabled Config.
func (c Config) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.Refill <= 0 {
		return fmt.Errorf("%w: refill must be positive, got %d", ErrInvalidConfig, c.Refill)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalidConfig, c.Interval)
	}
	return nil
}
