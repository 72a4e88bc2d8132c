package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/domainversion/internal/adapters/http"
	"github.com/jsamuelsen11/domainversion/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domainversion/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/domainversion/internal/domain"
	"github.com/jsamuelsen11/domainversion/internal/domain/version"
	"github.com/jsamuelsen11/domainversion/mocks"
)

type routerDeps struct {
	svc      *mocks.MockVersionService
	registry *mocks.MockHealthRegistry
}

func newRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, routerDeps) {
	t.Helper()

	deps := routerDeps{
		svc:      mocks.NewMockVersionService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}
	router := adapthttp.NewRouter(
		handlers.NewVersionHandler(deps.svc),
		handlers.NewHealthHandler(deps.registry),
		middlewares...,
	)
	return router, deps
}

func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	router, _ := newRouter(t)
	mux, ok := router.(*chi.Mux)
	if !ok {
		t.Fatalf("NewRouter() = %T, want *chi.Mux", router)
	}

	var got []string
	if err := chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	}); err != nil {
		t.Fatalf("chi.Walk() error = %v", err)
	}
	slices.Sort(got)

	want := []string{
		"GET /api/v1/domains",
		"GET /api/v1/version",
		"GET /api/v1/versions",
		"GET /api/v1/versions/{domain}",
		"GET /health/live",
		"GET /health/ready",
	}
	if !slices.Equal(got, want) {
		t.Errorf("routes = %v, want %v", got, want)
	}
}

func TestNewRouter_Dispatch(t *testing.T) {
	t.Parallel()

	libsA, err := version.NewDomain("libs-a", "libs/a", "")
	if err != nil {
		t.Fatalf("NewDomain() error = %v", err)
	}
	tagged := version.NewResolution(libsA, version.Descriptor{BaseTag: "libs-a-1.2.0", CommitHash: "abc1234"})

	tests := []struct {
		name       string
		method     string
		target     string
		expect     func(routerDeps)
		wantStatus int
		wantJSON   string
	}{
		{
			name:       "liveness",
			method:     http.MethodGet,
			target:     "/health/live",
			wantStatus: http.StatusOK,
			wantJSON:   "application/json",
		},
		{
			name:   "domain version",
			method: http.MethodGet,
			target: "/api/v1/versions/libs-a",
			expect: func(d routerDeps) {
				d.svc.EXPECT().Describe(mock.Anything, "libs-a").Return(&tagged, nil)
			},
			wantStatus: http.StatusOK,
			wantJSON:   "application/json",
		},
		{
			name:   "unknown domain",
			method: http.MethodGet,
			target: "/api/v1/versions/ghost",
			expect: func(d routerDeps) {
				d.svc.EXPECT().Describe(mock.Anything, "ghost").Return(nil, &domain.UnknownDomainError{Domain: "ghost"})
			},
			wantStatus: http.StatusNotFound,
			wantJSON:   dto.ProblemContentType,
		},
		{
			name:       "unmatched path",
			method:     http.MethodGet,
			target:     "/api/v2/versions",
			wantStatus: http.StatusNotFound,
			wantJSON:   dto.ProblemContentType,
		},
		{
			name:       "write method on read-only API",
			method:     http.MethodPost,
			target:     "/api/v1/versions",
			wantStatus: http.StatusMethodNotAllowed,
			wantJSON:   dto.ProblemContentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router, deps := newRouter(t)
			if tt.expect != nil {
				tt.expect(deps)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.target, rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.wantJSON {
				t.Errorf("%s %s Content-Type = %q, want %q", tt.method, tt.target, ct, tt.wantJSON)
			}
			if tt.wantJSON != dto.ProblemContentType {
				return
			}
			var problem dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
				t.Fatalf("decoding problem: %v", err)
			}
			if problem.Status != tt.wantStatus || problem.Instance != tt.target {
				t.Errorf("problem = %+v, want status %d for %s", problem, tt.wantStatus, tt.target)
			}
		})
	}
}

func TestNewRouter_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	router, deps := newRouter(t, tag("outer"), tag("inner"))
	deps.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

	if !slices.Equal(order, []string{"outer", "inner"}) {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
}
