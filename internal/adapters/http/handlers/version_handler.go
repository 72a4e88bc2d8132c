package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/domainversion/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domainversion/internal/ports"
)

// VersionHandler serves domain versions over HTTP. It is read-only.
type VersionHandler struct {
	svc ports.VersionService
}

// NewVersionHandler creates a new VersionHandler with the given service port.
func NewVersionHandler(svc ports.VersionService) *VersionHandler {
	return &VersionHandler{svc: svc}
}

// ListDomains handles GET /api/v1/domains.
func (h *VersionHandler) ListDomains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToDomainListResponse(h.svc.Domains()))
}

// ListVersions handles GET /api/v1/versions. Per-domain failures are reported
// in the body; the response itself is 200.
func (h *VersionHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToVersionListResponse(h.svc.ResolveAll(r.Context())))
}

// GetVersion handles GET /api/v1/versions/{domain}.
func (h *VersionHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Describe(r.Context(), chi.URLParam(r, "domain"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToVersionResponse(res))
}

// InferVersion handles GET /api/v1/version?path=. The domain is inferred
// from the project path.
func (h *VersionHandler) InferVersion(w http.ResponseWriter, r *http.Request) {
	q := dto.ParseVersionQuery(r)
	if err := q.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.DescribeDefault(r.Context(), q.Path)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToVersionResponse(res))
}
