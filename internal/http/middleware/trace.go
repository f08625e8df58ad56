package middleware

import (
	"net/http"

	"github.com/davidbz/purposebot/internal/observability"
)

// Trace creates a middleware that injects a request ID into every request.
func Trace() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := observability.GenerateRequestID()
			ctx := observability.WithRequestID(r.Context(), requestID)

			w.Header().Set("X-Request-Id", requestID)

			observability.FromContext(ctx).Debug("scrape started",
				observability.String("method", r.Method),
				observability.String("path", r.URL.Path),
				observability.String("remote_addr", r.RemoteAddr),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
