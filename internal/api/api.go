// Package api assembles the API module with all domain systems and
// route registration.
package api

import (
	"net/http"

	"github.com/leasewatch/leasewatch/internal/config"
	"github.com/leasewatch/leasewatch/internal/infrastructure"
	"github.com/leasewatch/leasewatch/pkg/middleware"
	"github.com/leasewatch/leasewatch/pkg/module"
)

// NewModule creates the API module with all domain handlers and
// middleware. The returned stop function halts the rate limiter's
// cleanup goroutine and must be called on shutdown.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, func(), error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, domain, cfg); err != nil {
		return nil, nil, err
	}

	rateLimit, stop := middleware.RateLimit(&cfg.API.RateLimit)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(rateLimit)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, stop, nil
}
