package config

import (
	"fmt"
	"os"

	"github.com/leasewatch/leasewatch/pkg/formatting"
	"github.com/leasewatch/leasewatch/pkg/middleware"
	"github.com/leasewatch/leasewatch/pkg/openapi"
	"github.com/leasewatch/leasewatch/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "LEASEWATCH_CORS_ENABLED",
	Origins:          "LEASEWATCH_CORS_ORIGINS",
	AllowedMethods:   "LEASEWATCH_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "LEASEWATCH_CORS_ALLOWED_HEADERS",
	AllowCredentials: "LEASEWATCH_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "LEASEWATCH_CORS_MAX_AGE",
}

var rateLimitEnv = &middleware.RateLimitEnv{
	Enabled:           "LEASEWATCH_RATE_LIMIT_ENABLED",
	RequestsPerSecond: "LEASEWATCH_RATE_LIMIT_RPS",
	Burst:             "LEASEWATCH_RATE_LIMIT_BURST",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "LEASEWATCH_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "LEASEWATCH_PAGINATION_MAX_PAGE_SIZE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "LEASEWATCH_OPENAPI_TITLE",
	Description: "LEASEWATCH_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, CORS, rate limiting, and pagination
// settings.
type APIConfig struct {
	BasePath      string                     `toml:"base_path"`
	MaxUploadSize string                     `toml:"max_upload_size"`
	CORS          middleware.CORSConfig      `toml:"cors"`
	RateLimit     middleware.RateLimitConfig `toml:"rate_limit"`
	Pagination    pagination.Config          `toml:"pagination"`
	OpenAPI       openapi.Config             `toml:"openapi"`
}

func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return 50 * 1024 * 1024 // 50MB fallback
	}
	return size
}

// Finalize applies defaults, environment overrides, and validation for
// the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.RateLimit.Finalize(rateLimitEnv); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.RateLimit.Merge(&overlay.RateLimit)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "50MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("LEASEWATCH_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("LEASEWATCH_API_MAX_UPLOAD_SIZE"); v != "" {
		c.MaxUploadSize = v
	}
}
