package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/smartcitysecure/smartcity-api/pkg/metrics"
)

// Metrics records every request under its chi route pattern. chi trims the
// trailing slash from patterns, so "/usuarios/" and "/usuarios" share the
// "/usuarios" series. Requests no route matched are labelled "unmatched".
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			m.Observe(r.Method, route, rec.statusCode(), time.Since(start))
		})
	}
}
