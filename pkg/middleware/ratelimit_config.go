package middleware

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// RateLimitConfig holds per-client request throttling settings.
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	CleanupInterval   string  `toml:"cleanup_interval"`
	IdleExpiry        string  `toml:"idle_expiry"`
}

// RateLimitEnv names the environment variables that override
// RateLimitConfig.
type RateLimitEnv struct {
	Enabled           string
	RequestsPerSecond string
	Burst             string
}

// CleanupIntervalDuration returns CleanupInterval as a time.Duration.
func (c *RateLimitConfig) CleanupIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.CleanupInterval)
	return d
}

// IdleExpiryDuration returns IdleExpiry as a time.Duration.
func (c *RateLimitConfig) IdleExpiryDuration() time.Duration {
	d, _ := time.ParseDuration(c.IdleExpiry)
	return d
}

// Finalize applies defaults, environment overrides, and validation.
func (c *RateLimitConfig) Finalize(env *RateLimitEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites fields from overlay. Enabled always applies;
// numeric and duration fields only when set.
func (c *RateLimitConfig) Merge(overlay *RateLimitConfig) {
	c.Enabled = overlay.Enabled

	if overlay.RequestsPerSecond != 0 {
		c.RequestsPerSecond = overlay.RequestsPerSecond
	}
	if overlay.Burst != 0 {
		c.Burst = overlay.Burst
	}
	if overlay.CleanupInterval != "" {
		c.CleanupInterval = overlay.CleanupInterval
	}
	if overlay.IdleExpiry != "" {
		c.IdleExpiry = overlay.IdleExpiry
	}
}

func (c *RateLimitConfig) loadDefaults() {
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = 20
	}
	if c.Burst <= 0 {
		c.Burst = 40
	}
	if c.CleanupInterval == "" {
		c.CleanupInterval = "5m"
	}
	if c.IdleExpiry == "" {
		c.IdleExpiry = "15m"
	}
}

func (c *RateLimitConfig) loadEnv(env *RateLimitEnv) {
	if env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if enabled, err := strconv.ParseBool(v); err == nil {
				c.Enabled = enabled
			}
		}
	}
	if env.RequestsPerSecond != "" {
		if v := os.Getenv(env.RequestsPerSecond); v != "" {
			if rps, err := strconv.ParseFloat(v, 64); err == nil {
				c.RequestsPerSecond = rps
			}
		}
	}
	if env.Burst != "" {
		if v := os.Getenv(env.Burst); v != "" {
			if burst, err := strconv.Atoi(v); err == nil {
				c.Burst = burst
			}
		}
	}
}

func (c *RateLimitConfig) validate() error {
	if _, err := time.ParseDuration(c.CleanupInterval); err != nil {
		return fmt.Errorf("invalid cleanup_interval: %w", err)
	}
	if _, err := time.ParseDuration(c.IdleExpiry); err != nil {
		return fmt.Errorf("invalid idle_expiry: %w", err)
	}
	return nil
}
