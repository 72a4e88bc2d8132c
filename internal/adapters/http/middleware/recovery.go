package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/domainversion/internal/adapters/http/dto"
)

// errPanic is what clients see after a recovered panic. The panic value and
// stack only go to the log.
var errPanic = errors.New("internal server error")

// Recovery turns a panic in a downstream handler into an RFC 9457 500
// response. When the handler already started the response only the log entry
// is written. http.ErrAbortHandler is re-raised so net/http can abort the
// connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				value, stack := v, debug.Stack()
				if hp, ok := v.(*handlerPanic); ok {
					value, stack = hp.value, hp.stack
				}
				logPanic(logger, r, value, stack)
				if !sr.started {
					dto.WriteErrorResponse(sr, r, errPanic)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}

func logPanic(logger *slog.Logger, r *http.Request, v any, stack []byte) {
	logger.ErrorContext(r.Context(), "panic recovered",
		slog.String("panic", fmt.Sprint(v)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", RequestIDFromContext(r.Context())),
		slog.String("stack", string(stack)),
	)
}
