package middleware

import (
	"net/http"
	"slices"

	"github.com/davidbz/purposebot/internal/config"
)

// Middleware decorates the metrics endpoint handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middlewares. The first one sees the request first.
func Chain(middlewares ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, m := range slices.Backward(middlewares) {
			h = m(h)
		}
		return h
	}
}

// BuildMiddlewareChain returns the scrape endpoint chain: CORS for browser
// dashboards, a request id per scrape, and panic recovery next to the handler.
func BuildMiddlewareChain(corsConfig *config.CORSConfig) Middleware {
	return Chain(
		CORS(corsConfig),
		Trace(),
		Recover(),
	)
}
