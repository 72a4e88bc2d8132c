// Package http provides the inbound HTTP adapter: a read-only API that build
// agents query for domain versions, plus health checks.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/domainversion/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domainversion/internal/adapters/http/handlers"
)

// NewRouter mounts the health checks and the read-only /api/v1 routes.
// middlewares wrap every route, outermost first. Unmatched paths and methods
// answer with a problem document like every other API failure.
func NewRouter(
	versionHandler *handlers.VersionHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusNotFound, "no route for "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed, req.Method+" is not supported on "+req.URL.Path)
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/domains", versionHandler.ListDomains)

		r.Get("/versions", versionHandler.ListVersions)
		r.Get("/versions/{domain}", versionHandler.GetVersion)
		// ?path= names a project directory; its domain is inferred.
		r.Get("/version", versionHandler.InferVersion)
	})

	return r
}
