package dto

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/domainversion/internal/domain"
)

const msgRequired = "is required"

// VersionQuery holds the query parameters of GET /api/v1/version.
type VersionQuery struct {
	// Path is a project directory, relative to the repository root or
	// absolute inside it.
	Path string
}

// ParseVersionQuery reads a VersionQuery from the request URL.
func ParseVersionQuery(r *http.Request) VersionQuery {
	return VersionQuery{Path: strings.TrimSpace(r.URL.Query().Get("path"))}
}

// Validate checks that required parameters are present.
// Returns a *domain.ValidationError if any checks fail.
func (q *VersionQuery) Validate() error {
	if q.Path == "" {
		return &domain.ValidationError{Fields: map[string]string{"path": msgRequired}}
	}
	return nil
}
