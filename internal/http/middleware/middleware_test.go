package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/purposebot/internal/config"
	"github.com/davidbz/purposebot/internal/http/middleware"
	"github.com/davidbz/purposebot/internal/observability"
)

func TestChain_Order(t *testing.T) {
	var order []string
	tag := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := middleware.Chain(tag("first"), tag("second"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestTrace_InjectsRequestID(t *testing.T) {
	var seen string
	handler := middleware.Trace()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = observability.GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.NotEmpty(t, seen)
	require.Equal(t, seen, w.Header().Get("X-Request-Id"))
}

func TestCORS(t *testing.T) {
	t.Run("should allow configured origin", func(t *testing.T) {
		handler := middleware.CORS(&config.CORSConfig{
			AllowedOrigins: []string{"https://grafana.example.com"},
			AllowedMethods: []string{http.MethodGet},
		})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.Header.Set("Origin", "https://grafana.example.com")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, "https://grafana.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should be a no-op without config", func(t *testing.T) {
		called := false
		handler := middleware.CORS(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			called = true
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.True(t, called)
	})
}

func TestRecover(t *testing.T) {
	t.Run("should answer 500 when the handler panics", func(t *testing.T) {
		handler := middleware.Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("collector registered twice")
		}))

		w := httptest.NewRecorder()
		require.NotPanics(t, func() {
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, "internal server error\n", w.Body.String())
	})

	t.Run("should pass through normal responses", func(t *testing.T) {
		handler := middleware.Recover()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestBuildMiddlewareChain(t *testing.T) {
	handler := middleware.BuildMiddlewareChain(&config.CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
