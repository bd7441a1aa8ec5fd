package notify

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/leasewatch/leasewatch/pkg/handlers"
	"github.com/leasewatch/leasewatch/pkg/routes"
)

// Handler provides HTTP endpoints for notification operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// TestRequest carries the target address for a test email.
type TestRequest struct {
	Email string `json:"email"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "notifications"),
	}
}

// Routes returns the route group definition for notification endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/notifications",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/dispatch", Handler: h.Dispatch},
			{Method: "POST", Pattern: "/test", Handler: h.Test},
		},
	}
}

// Dispatch sends alert emails for every agreement in an active tier and
// returns the sent/failed/unmatched report.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	report, err := h.sys.Dispatch(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// Test sends a configuration test email to the address in the request body.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	var req TestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.SendTest(req.Email); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
