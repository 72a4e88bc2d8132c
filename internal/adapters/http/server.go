package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jsamuelsen11/domainversion/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server serves the version API until it is shut down.
type Server struct {
	srv    *http.Server
	logger *slog.Logger

	mu        sync.Mutex
	bound     net.Addr
	listening chan struct{}
}

// NewServer builds a Server listening on cfg.Host:cfg.Port. A nil logger
// discards output.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger:    logger,
		listening: make(chan struct{}),
	}
}

// Start binds the listen address and serves until Shutdown. It returns nil
// after a graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	s.mu.Lock()
	s.bound = ln.Addr()
	close(s.listening)
	s.mu.Unlock()

	s.logger.Info("serving version API", slog.String("addr", ln.Addr().String()))

	if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}

// Run serves until ctx is done, then shuts down gracefully. A listen failure
// is returned immediately.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// ctx is already canceled; in-flight requests get a fresh deadline.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return <-errCh
}

// Shutdown stops accepting connections and waits for in-flight requests.
// Without a deadline on ctx it waits at most 10 seconds.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down version API")
	return s.srv.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Listening is closed once Start has bound its listener.
func (s *Server) Listening() <-chan struct{} {
	return s.listening
}

// BoundAddr returns the address actually bound, which differs from Addr when
// port 0 was configured. It is empty before Listening is closed.
func (s *Server) BoundAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bound == nil {
		return ""
	}
	return s.bound.String()
}
