// Package dto provides HTTP response data transfer objects, query parsing,
// and RFC 9457 Problem Details error responses for the inbound HTTP adapter.
package dto

import (
	"github.com/jsamuelsen11/domainversion/internal/domain/version"
	"github.com/jsamuelsen11/domainversion/internal/ports"
)

// DomainResponse represents a declared domain in HTTP responses.
type DomainResponse struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	TagPrefix string `json:"tag_prefix"`
}

// DomainListResponse represents the list of declared domains.
type DomainListResponse struct {
	Domains []DomainResponse `json:"domains"`
	Count   int              `json:"count"`
}

// ToDomainResponse converts a domain to its HTTP representation.
func ToDomainResponse(d version.Domain) DomainResponse {
	return DomainResponse{
		Name:      d.Name,
		Path:      d.Path,
		TagPrefix: d.TagPrefix,
	}
}

// ToDomainListResponse converts the declared domains to an HTTP list response.
func ToDomainListResponse(domains []version.Domain) DomainListResponse {
	items := make([]DomainResponse, len(domains))
	for i, d := range domains {
		items[i] = ToDomainResponse(d)
	}
	return DomainListResponse{
		Domains: items,
		Count:   len(items),
	}
}

// VersionResponse represents one resolved domain version.
type VersionResponse struct {
	Domain          string `json:"domain"`
	Path            string `json:"path"`
	Version         string `json:"version"`
	BaseTag         string `json:"base_tag"`
	CommitsSinceTag int    `json:"commits_since_tag"`
	CommitHash      string `json:"commit_hash"`
	Dirty           bool   `json:"dirty"`
	Implicit        bool   `json:"implicit"`
}

// ToVersionResponse converts a resolution to an HTTP response DTO.
func ToVersionResponse(res *version.Resolution) VersionResponse {
	return VersionResponse{
		Domain:          res.Domain.Name,
		Path:            res.Domain.Path,
		Version:         res.Version,
		BaseTag:         res.Descriptor.BaseTag,
		CommitsSinceTag: res.Descriptor.CommitsSinceTag,
		CommitHash:      res.Descriptor.CommitHash,
		Dirty:           res.Descriptor.IsDirty,
		Implicit:        res.Descriptor.Implicit,
	}
}

// VersionListResponse represents the result of resolving every domain.
// Domains that failed are listed in Errors; the others in Versions.
type VersionListResponse struct {
	Versions  []VersionResponse  `json:"versions"`
	Errors    []VersionErrorItem `json:"errors"`
	Total     int                `json:"total"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
}

// VersionErrorItem represents a single domain that could not be resolved.
type VersionErrorItem struct {
	Domain  string `json:"domain"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ToVersionListResponse converts per-domain results to an HTTP response DTO.
func ToVersionListResponse(results []ports.DomainResult) VersionListResponse {
	resp := VersionListResponse{
		Versions: make([]VersionResponse, 0, len(results)),
		Errors:   make([]VersionErrorItem, 0),
		Total:    len(results),
	}
	for _, r := range results {
		if r.Err != nil {
			resp.Errors = append(resp.Errors, VersionErrorItem{
				Domain:  r.Domain.Name,
				Status:  StatusFor(r.Err),
				Message: r.Err.Error(),
			})
			continue
		}
		resp.Versions = append(resp.Versions, ToVersionResponse(r.Resolution))
	}
	resp.Succeeded = len(resp.Versions)
	resp.Failed = len(resp.Errors)
	return resp
}

// ReadinessResponse is the body of the readiness check. Checks maps each
// component to "ok" or its error message.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
