package middleware

import (
	"net/http"
	"time"
)

type requestObserver interface {
	RequestStarted() func()
	ObserveRequest(method, route string, status int, d time.Duration)
}

// Metrics records request counts, durations and in-flight requests,
// labelled by route pattern. Unmatched requests share one label.
func Metrics(obs requestObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := obs.RequestStarted()
			defer done()

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			route := routePattern(r)
			if route == "" {
				route = "unmatched"
			}
			obs.ObserveRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
