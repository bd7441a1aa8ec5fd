package api

import (
	"github.com/leasewatch/leasewatch/internal/config"
	"github.com/leasewatch/leasewatch/internal/infrastructure"
	"github.com/leasewatch/leasewatch/pkg/pagination"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Agent      gaconfig.AgentConfig
	SMTP       config.SMTPConfig
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Agent:      cfg.Agent,
		SMTP:       cfg.SMTP,
		Pagination: cfg.API.Pagination,
	}
}
