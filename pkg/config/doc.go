// Package config loads typed configuration from environment variables.
//
// Structs are described with `env` tags understood by
// github.com/caarlos0/env/v11. On first use the package loads ./.env through
// github.com/joho/godotenv if present; additional files can be read with
// LoadEnv before the first Load.
//
//	type Config struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Every configuration type is parsed once and cached. ResetCache clears the
// cache, which tests use after changing the environment.
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// matched with errors.Is.
package config
