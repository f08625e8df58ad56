package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/davidbz/purposebot/internal/config"
	"github.com/davidbz/purposebot/internal/http/middleware"
	"github.com/davidbz/purposebot/internal/observability"
)

// Server represents the metrics HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	return &Server{
		config:      *cfg,
		handler:     handler,
		middlewares: middlewares,
		srv:         nil,
	}
}

// Listen binds the configured port without serving yet.
func (s *Server) Listen() error {
	mux := http.NewServeMux()

	// Register routes.
	mux.HandleFunc("/metrics", s.handler.HandleMetrics)

	// Apply middleware chain.
	handlerWithMiddleware := s.middlewares(mux)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.config.Port))
	if err != nil {
		return fmt.Errorf("failed to bind port %d: %w", s.config.Port, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Create server with timeouts.
	s.listener = listener
	s.srv = &http.Server{
		Handler:      handlerWithMiddleware,
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	return nil
}

// Serve accepts connections on the bound listener until Shutdown.
func (s *Server) Serve() error {
	s.mu.Lock()
	srv, listener := s.srv, s.listener
	s.mu.Unlock()

	if srv == nil {
		return errors.New("server is not listening")
	}

	observability.FromContext(context.Background()).Info("starting HTTP server",
		observability.String("addr", listener.Addr().String()))

	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown stops accepting connections and releases the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
