// Package workflow implements the lease term extraction pipeline as a
// state graph: download and render the agreement scan, run vision
// extraction per page, and merge page results into a single field set.
package workflow

import (
	"log/slog"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/leasewatch/leasewatch/internal/documents"
	"github.com/leasewatch/leasewatch/pkg/storage"
)

// Runtime bundles the dependencies that workflow nodes require. It is
// constructed by higher-level composition code from Infrastructure and
// Domain systems.
type Runtime struct {
	Agent     gaconfig.AgentConfig
	Storage   storage.System
	Documents documents.System
	Logger    *slog.Logger
}
