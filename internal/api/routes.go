package api

import (
	"net/http"

	"github.com/leasewatch/leasewatch/internal/config"
	"github.com/leasewatch/leasewatch/pkg/openapi"
	"github.com/leasewatch/leasewatch/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) error {
	routes.Register(
		mux,
		domain.Agreements.Handler().Routes(),
		domain.Archive.Handler().Routes(),
		domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Recipients.Handler().Routes(),
		domain.Notify.Handler().Routes(),
	)

	spec := buildSpec(cfg)
	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	return nil
}
