package redis

import "time"

// Config is read from the environment. An empty URL disables Redis.
type Config struct {
	// URL has the form "redis://:password@localhost:6379/0".
	URL            string        `env:"REDIS_URL"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"1s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

func (c Config) Enabled() bool {
	return c.URL != ""
}
