// Package config loads the service configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/goliatone/go-errors"
)

// Config holds every runtime knob. JWT_SECRET has no default on purpose:
// the process must not come up with a guessable signing key.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":3000" json:"http_addr"`
	DatabaseDSN     string        `env:"DATABASE_URL" envDefault:"file:shop.db" json:"database_dsn"`
	JWTSecret       string        `env:"JWT_SECRET,required,notEmpty" json:"-"`
	TokenExpiration int           `env:"TOKEN_EXPIRATION_HOURS" envDefault:"1" json:"token_expiration_hours"`
	Issuer          string        `env:"JWT_ISSUER" envDefault:"go-shop" json:"issuer"`
	StoreTimeout    time.Duration `env:"STORE_TIMEOUT" envDefault:"5s" json:"store_timeout"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info" json:"log_level"`
}

// Load reads the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CategoryBadInput, "failed to load configuration from environment")
	}
	return cfg, nil
}

func (c *Config) GetSigningKey() string {
	return c.JWTSecret
}

func (c *Config) GetTokenExpiration() int {
	return c.TokenExpiration
}

func (c *Config) GetIssuer() string {
	return c.Issuer
}

func (c *Config) GetStoreTimeout() time.Duration {
	return c.StoreTimeout
}
