package http_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/domainversion/internal/adapters/http"
	"github.com/jsamuelsen11/domainversion/internal/platform/config"
)

func loopbackConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
}

// awaitListening fails the test if the server does not bind within a second.
func awaitListening(t *testing.T, s *adapthttp.Server) string {
	t.Helper()

	select {
	case <-s.Listening():
		return s.BoundAddr()
	case <-time.After(time.Second):
		t.Fatal("server did not start listening")
		return ""
	}
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		port int
		want string
	}{
		{host: "127.0.0.1", port: 9090, want: "127.0.0.1:9090"},
		{host: "", port: 8080, want: ":8080"},
		{host: "::1", port: 8080, want: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			s := adapthttp.NewServer(config.ServerConfig{Host: tt.host, Port: tt.port}, http.NotFoundHandler(), nil)
			if got := s.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
			if got := s.BoundAddr(); got != "" {
				t.Errorf("BoundAddr() before Start = %q, want empty", got)
			}
		})
	}
}

func TestServer_ServesUntilShutdown(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "libs-a-1.0.0\n")
	})
	s := adapthttp.NewServer(loopbackConfig(), handler, slog.New(slog.DiscardHandler))

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	addr := awaitListening(t, s)
	if _, port, _ := net.SplitHostPort(addr); port == "0" {
		t.Fatalf("BoundAddr() = %q, want an assigned port", addr)
	}

	resp, err := http.Get("http://" + addr + "/api/v1/versions/libs-a")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "libs-a-1.0.0\n" {
		t.Errorf("body = %q, want %q", body, "libs-a-1.0.0\n")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Errorf("Start() error = %v, want nil after shutdown", err)
	}
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(loopbackConfig(), http.NotFoundHandler(), nil)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()
	awaitListening(t, s)

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Errorf("Start() error = %v, want nil after shutdown", err)
	}
}

func TestServer_StartReportsBindFailure(t *testing.T) {
	t.Parallel()

	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer taken.Close()

	cfg := loopbackConfig()
	cfg.Port = taken.Addr().(*net.TCPAddr).Port
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil)

	err = s.Start()
	if err == nil {
		t.Fatal("Start() error = nil, want bind failure")
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		t.Errorf("Start() error = %v, want a *net.OpError in the chain", err)
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(loopbackConfig(), http.NotFoundHandler(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	addr := awaitListening(t, s)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run() error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}

	if conn, err := net.DialTimeout("tcp", addr, time.Second); err == nil {
		_ = conn.Close()
		t.Errorf("listener on %s still accepting after Run returned", addr)
	}
}

func TestServer_RunReturnsBindFailure(t *testing.T) {
	t.Parallel()

	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer taken.Close()

	_, port, _ := net.SplitHostPort(taken.Addr().String())
	cfg := loopbackConfig()
	cfg.Port, _ = strconv.Atoi(port)

	if err := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil).Run(context.Background()); err == nil {
		t.Fatal("Run() error = nil, want bind failure")
	}
}
