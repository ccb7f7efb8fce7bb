package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

var (
	conf    Config
	once    sync.Once
	loadErr error
)

// Load reads the given .env files (".env" when none are named) into the process
// environment and decodes it. A missing file is not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			log.Debug().Err(err).Str("file", file).Msg("env file skipped")
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
		errs = append(errs, errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET are required"))
	}

	if c.JWT.AccessSecret != "" && c.JWT.AccessSecret == c.JWT.RefreshSecret {
		errs = append(errs, errors.New("access and refresh tokens must be signed with different secrets"))
	}

	if c.JWT.AccessExpireMin <= 0 || c.JWT.RefreshExpireMin <= 0 {
		errs = append(errs, errors.New("token lifetimes must be positive"))
	}

	if c.App.RateLimiter.Enable && (c.App.RateLimiter.MaxRequests <= 0 || c.App.RateLimiter.WindowSeconds <= 0) {
		errs = append(errs, errors.New("rate limiter needs MAX_REQUESTS and WINDOW_SECONDS"))
	}

	return errors.Join(errs...)
}

// Init loads the process wide configuration once.
func Init() error {
	once.Do(func() {
		var cfg *Config

		if cfg, loadErr = Load(); loadErr == nil {
			conf = *cfg

			log.Info().Str("env", conf.Server.Env).Msg("configuration loaded")
		}
	})

	return loadErr
}

// Get returns the process wide configuration, exiting when it cannot be loaded.
func Get() *Config {
	if err := Init(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	return &conf
}
