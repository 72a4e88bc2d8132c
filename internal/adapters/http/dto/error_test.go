package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/domainversion/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domainversion/internal/domain"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	queryErr := &domain.VCSQueryError{Domain: "a", Path: "libs/a", Op: "log", Err: errors.New("object not found")}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown domain", err: &domain.UnknownDomainError{Domain: "ghost"}, want: http.StatusNotFound},
		{name: "wrapped unknown domain", err: fmt.Errorf("resolving: %w", domain.ErrUnknownDomain), want: http.StatusNotFound},
		{name: "validation", err: &domain.ValidationError{Fields: map[string]string{"path": "is required"}}, want: http.StatusBadRequest},
		{name: "vcs query", err: queryErr, want: http.StatusBadGateway},
		{name: "deadline", err: fmt.Errorf("walking history: %w", context.DeadlineExceeded), want: http.StatusGatewayTimeout},
		{name: "canceled", err: context.Canceled, want: http.StatusInternalServerError},
		{name: "anything else", err: errors.New("oops"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := dto.StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		err        error
		wantTitle  string
		wantDomain string
	}{
		{
			name:       "unknown domain names the domain",
			target:     "/api/v1/versions/ghost",
			err:        &domain.UnknownDomainError{Domain: "ghost"},
			wantTitle:  "Not Found",
			wantDomain: "ghost",
		},
		{
			name:       "vcs query names the domain",
			target:     "/api/v1/versions/libs-a",
			err:        fmt.Errorf("describe: %w", &domain.VCSQueryError{Domain: "libs-a", Op: "head", Err: errors.New("reference not found")}),
			wantTitle:  "Bad Gateway",
			wantDomain: "libs-a",
		},
		{
			name:      "timeout has no domain",
			target:    "/api/v1/versions",
			err:       context.DeadlineExceeded,
			wantTitle: "Gateway Timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dto.NewErrorResponse(httptest.NewRequest(http.MethodGet, tt.target, nil), tt.err)

			if got.Type != "about:blank" {
				t.Errorf("Type = %q, want about:blank", got.Type)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Status != dto.StatusFor(tt.err) {
				t.Errorf("Status = %d, want %d", got.Status, dto.StatusFor(tt.err))
			}
			if got.Instance != tt.target {
				t.Errorf("Instance = %q, want %q", got.Instance, tt.target)
			}
			if got.Detail != tt.err.Error() {
				t.Errorf("Detail = %q, want %q", got.Detail, tt.err.Error())
			}
			if got.Domain != tt.wantDomain {
				t.Errorf("Domain = %q, want %q", got.Domain, tt.wantDomain)
			}
			if got.InvalidParams != nil {
				t.Errorf("InvalidParams = %+v, want nil", got.InvalidParams)
			}
		})
	}
}

func TestNewErrorResponse_InvalidParamsSortedByName(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"project_dir": "must be inside the repository root /repo",
		"path":        "must be relative to the repository root",
		"domain":      "is required",
	}}

	got := dto.NewErrorResponse(httptest.NewRequest(http.MethodGet, "/api/v1/version?path=/etc", nil), verr)

	want := []dto.InvalidParam{
		{Name: "domain", Reason: "is required"},
		{Name: "path", Reason: "must be relative to the repository root"},
		{Name: "project_dir", Reason: "must be inside the repository root /repo"},
	}
	if len(got.InvalidParams) != len(want) {
		t.Fatalf("len(InvalidParams) = %d, want %d", len(got.InvalidParams), len(want))
	}
	for i := range want {
		if got.InvalidParams[i] != want[i] {
			t.Errorf("InvalidParams[%d] = %+v, want %+v", i, got.InvalidParams[i], want[i])
		}
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)

	dto.WriteErrorResponse(rec, req, &domain.ValidationError{Fields: map[string]string{"path": "is required"}})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if ct := rec.Header().Get("Content-Type"); ct != dto.ProblemContentType {
		t.Errorf("Content-Type = %q, want %q", ct, dto.ProblemContentType)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if _, ok := body["invalid_params"]; !ok {
		t.Errorf("body = %v, want invalid_params member", body)
	}
	if _, ok := body["domain"]; ok {
		t.Errorf("body = %v, want domain member omitted", body)
	}
	if body["status"] != float64(http.StatusBadRequest) {
		t.Errorf("body status = %v, want %d", body["status"], http.StatusBadRequest)
	}
}
