// Package config loads the runtime configuration of the resto command.
package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/govalues/resto"
)

// Prefix is prepended to every environment variable name.
const Prefix = "RESTO"

// Config holds runtime configuration for the command.
type Config struct {
	Env             string        `envconfig:"ENV" default:"development"`
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// Currencies preselected at the till.
	PriceCurrency resto.Currency `envconfig:"PRICE_CURRENCY" default:"EUR"`
	PaidCurrency  resto.Currency `envconfig:"PAID_CURRENCY" default:"BGN"`
}

// Load reads configuration from RESTO_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if cfg.Addr == "" {
		return nil, errors.New("config: listen address must be provided")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("config: shutdown timeout must be positive")
	}
	return &cfg, nil
}

// IsProduction returns true when the command runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}

// Input returns an empty till input with the configured currencies.
func (c *Config) Input() resto.Input {
	in := resto.NewInput()
	if c != nil {
		in.PriceCurr = c.PriceCurrency
		in.PaidCurr = c.PaidCurrency
	}
	return in
}
