// Package config holds runtime settings for the calculation service:
// listen address, storage DSN, token secret and token lifetime.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ListenAddr  string
	DatabaseDSN string
	TokenSecret string
	TokenTTL    time.Duration
}

// LoadDefaults populates development defaults. The secret must be overridden
// outside of local development.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.DatabaseDSN = "calculations.db"
	c.TokenSecret = "dev-secret-change-me"
	c.TokenTTL = 30 * time.Minute
}

// Load builds a Config from defaults, an optional .env file and the process
// environment, in that order of precedence.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using environment and defaults")
	}

	if v := os.Getenv("CALC_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("CALC_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("CALC_TOKEN_SECRET"); v != "" {
		cfg.TokenSecret = v
	}
	if v := os.Getenv("CALC_TOKEN_TTL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			logrus.WithField("value", v).Warn("invalid CALC_TOKEN_TTL_MINUTES, keeping default")
		} else {
			cfg.TokenTTL = time.Duration(minutes) * time.Minute
		}
	}

	return cfg
}
