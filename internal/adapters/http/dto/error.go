package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/domainversion/internal/domain"
)

// ProblemContentType is the media type of every error body (RFC 9457).
const ProblemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document. Domain is an extension
// member naming the domain the failure concerns, when there is one.
type ErrorResponse struct {
	Type          string         `json:"type"`
	Title         string         `json:"title"`
	Status        int            `json:"status"`
	Detail        string         `json:"detail,omitempty"`
	Instance      string         `json:"instance,omitempty"`
	Domain        string         `json:"domain,omitempty"`
	InvalidParams []InvalidParam `json:"invalid_params,omitempty"`
}

// InvalidParam names one rejected request parameter.
type InvalidParam struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// NewErrorResponse builds the problem document for err. Instance is the
// request URI so a client can tell which query failed in a batch of calls.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusFor(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
		Domain:   domainOf(err),
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.InvalidParams = invalidParams(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes the problem document for err with its mapped
// status code.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes a problem document for a failure that has no domain
// error behind it, such as an unmatched route.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	})
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "encoding problem response failed",
			slog.Any("error", encErr),
			slog.Int("status", resp.Status),
		)
	}
}

// StatusFor maps domain sentinel errors to HTTP status codes. A failed
// repository query is an upstream failure from the client's point of view.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownDomain):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrVCSQuery):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func domainOf(err error) string {
	var uerr *domain.UnknownDomainError
	if errors.As(err, &uerr) {
		return uerr.Domain
	}
	var qerr *domain.VCSQueryError
	if errors.As(err, &qerr) {
		return qerr.Domain
	}
	return ""
}

// invalidParams returns one entry per field, ordered by name.
func invalidParams(fields map[string]string) []InvalidParam {
	params := make([]InvalidParam, 0, len(fields))
	for name, reason := range fields {
		params = append(params, InvalidParam{Name: name, Reason: reason})
	}
	slices.SortFunc(params, func(a, b InvalidParam) int {
		return strings.Compare(a.Name, b.Name)
	})
	return params
}
