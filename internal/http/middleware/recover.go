package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/davidbz/purposebot/internal/observability"
)

// Recover turns a panic during a scrape into a 500 so the metrics server
// keeps serving.
func Recover() Middleware {
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

				observability.FromContext(r.Context()).Error("scrape panicked",
					observability.Any("panic", rec),
					zap.Stack("stack"))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
