package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/domainversion/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domainversion/internal/platform/logging"
	"github.com/jsamuelsen11/domainversion/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the orchestrator health checks.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler reports readiness from registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is proof enough,
// so the repository is not consulted.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if the repository and any
// other registered component are healthy, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.ReadinessResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	writeJSON(w, r, code, resp)
}
