package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/leadfinder-backend/pkg/ctxutil"
)

// Recovery returns middleware that recovers from panics, logs them with a
// stack trace, and answers 500 with the generic error body.
// http.ErrAbortHandler is re-raised so the server aborts the response.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				writeJSON(w, http.StatusInternalServerError, errorBody{Error: "an unexpected error occurred"})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
