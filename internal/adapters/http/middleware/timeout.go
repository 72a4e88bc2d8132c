package middleware

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/jsamuelsen11/domainversion/internal/adapters/http/dto"
)

// Timeout bounds each request to d. The handler runs in its own goroutine
// against a buffered writer; whichever of the handler or the deadline
// finishes first owns the real response. On expiry the client receives an
// RFC 9457 504, and the handler's context is canceled so the git history
// walk stops at the next commit. A panic in the handler is raised again on
// the serving goroutine, where Recovery can answer it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan *handlerPanic, 1)
			go func() {
				defer close(done)
				defer func() {
					if v := recover(); v != nil {
						panicked <- &handlerPanic{value: v, stack: debug.Stack()}
					}
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case <-done:
				select {
				case p := <-panicked:
					p.raise()
				default:
				}
				if ctx.Err() == nil || buf.started() {
					buf.copyTo(w)
					return
				}
			case <-ctx.Done():
			}

			if buf.abandon() {
				dto.WriteErrorResponse(w, r, context.DeadlineExceeded)
			}
		})
	}
}

// handlerPanic carries a panic out of the goroutine Timeout runs the handler
// on, together with the stack where it happened.
type handlerPanic struct {
	value any
	stack []byte
}

func (p *handlerPanic) String() string {
	return fmt.Sprintf("%v\n\n%s", p.value, p.stack)
}

// raise panics on the calling goroutine. http.ErrAbortHandler is raised as
// is so the server still aborts the connection quietly.
func (p *handlerPanic) raise() {
	if err, ok := p.value.(error); ok && errors.Is(err, http.ErrAbortHandler) {
		panic(p.value)
	}
	panic(p)
}

// bufferedResponse collects a handler's response until Timeout decides
// whether to send it. After abandon, writes are accepted and dropped.
type bufferedResponse struct {
	mu        sync.Mutex
	header    http.Header
	body      []byte
	status    int
	abandoned bool
}

func (b *bufferedResponse) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = http.StatusOK
	}
	if !b.abandoned {
		b.body = append(b.body, p...)
	}
	return len(p), nil
}

func (b *bufferedResponse) started() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status != 0
}

// abandon marks the buffer as discarded. It reports false when the handler
// had already started a response, which is then left as is.
func (b *bufferedResponse) abandon() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.abandoned = true
	return b.status == 0
}

func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
