package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/domainversion/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func serveRecovered(logger *slog.Logger, h http.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/versions/libs-a", http.NoBody)
	middleware.Recovery(logger)(h).ServeHTTP(rec, req)
	return rec
}

func TestRecovery_PassesThrough(t *testing.T) {
	t.Parallel()

	rec := serveRecovered(slog.New(slog.DiscardHandler), func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("libs-a-1.0.0"))
	})

	if rec.Code != http.StatusOK || rec.Body.String() != "libs-a-1.0.0" {
		t.Errorf("response = %d %q, want 200 %q", rec.Code, rec.Body.String(), "libs-a-1.0.0")
	}
}

func TestRecovery_PanicBecomesProblem(t *testing.T) {
	t.Parallel()

	values := map[string]any{
		"string": "nil descriptor",
		"error":  errors.New("walk failed"),
		"int":    42,
	}

	for name, v := range values {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := serveRecovered(slog.New(slog.DiscardHandler), func(http.ResponseWriter, *http.Request) {
				panic(v)
			})

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
			}

			var body struct {
				Title  string `json:"title"`
				Detail string `json:"detail"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding response body: %v", err)
			}
			if body.Title != "Internal Server Error" {
				t.Errorf("title = %q, want %q", body.Title, "Internal Server Error")
			}
			if body.Detail != "internal server error" {
				t.Errorf("detail = %q, panic value must not leak", body.Detail)
			}
		})
	}
}

func TestRecovery_LogsPanicWithStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	serveRecovered(testLogger(&buf), func(http.ResponseWriter, *http.Request) {
		panic("catalog missing")
	})

	out := buf.String()
	for _, want := range []string{"panic recovered", "catalog missing", "goroutine", "path=/api/v1/versions/libs-a"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestRecovery_KeepsStartedResponse(t *testing.T) {
	t.Parallel()

	rec := serveRecovered(slog.New(slog.DiscardHandler), func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"versions":[`))
		panic("late panic")
	})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (already sent)", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "application/problem+json" {
		t.Error("problem details written after the response had started")
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()

	serveRecovered(slog.New(slog.DiscardHandler), func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})
	t.Error("Recovery swallowed http.ErrAbortHandler")
}
