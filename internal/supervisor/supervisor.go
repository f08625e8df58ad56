// Package supervisor owns process startup order and graceful shutdown.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/davidbz/purposebot/internal/chat"
	"github.com/davidbz/purposebot/internal/config"
	"github.com/davidbz/purposebot/internal/observability"
)

// HTTPServer is the metrics endpoint lifecycle.
type HTTPServer interface {
	Listen() error
	Serve() error
	Shutdown(ctx context.Context) error
}

// UptimeRunner refreshes the uptime gauge until ctx is cancelled.
type UptimeRunner interface {
	Run(ctx context.Context)
}

// Supervisor starts the metrics server and messaging sessions, and tears
// them down when the process context ends or a task fails.
type Supervisor struct {
	server          HTTPServer
	uptime          UptimeRunner
	sessions        []chat.Session
	shutdownTimeout time.Duration
}

// New creates a supervisor.
func New(
	server HTTPServer,
	uptime UptimeRunner,
	shutdown *config.ShutdownConfig,
	sessions []chat.Session,
) (*Supervisor, error) {
	if server == nil {
		return nil, errors.New("server cannot be nil")
	}

	if uptime == nil {
		return nil, errors.New("uptime runner cannot be nil")
	}

	if len(sessions) == 0 {
		return nil, errors.New("at least one messaging session is required")
	}

	timeout := 10 * time.Second
	if shutdown != nil && shutdown.Timeout > 0 {
		timeout = shutdown.Timeout
	}

	return &Supervisor{
		server:          server,
		uptime:          uptime,
		sessions:        sessions,
		shutdownTimeout: timeout,
	}, nil
}

// Run binds the metrics server, then opens every session. The first session
// to report ready starts the uptime updater. Run blocks until ctx is done or
// a task fails, then shuts everything down. Cancellation of ctx is a clean
// exit and yields a nil error.
func (s *Supervisor) Run(ctx context.Context) error {
	logger := observability.FromContext(ctx)

	if err := s.server.Listen(); err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(s.server.Serve)

	var once sync.Once
	uptimeDone := make(chan struct{})
	startUptime := func() {
		once.Do(func() {
			go func() {
				defer close(uptimeDone)
				s.uptime.Run(gctx)
			}()
		})
	}

	var errs []error
	opened := make([]chat.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		session.OnReady(startUptime)

		if err := session.Open(gctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to open %s session: %w", session.Name(), err))
			break
		}

		logger.Info("session opened", observability.String("platform", session.Name()))
		opened = append(opened, session)
	}

	if len(errs) == 0 {
		logger.Info("bot is running")
		<-gctx.Done()
	}

	if ctx.Err() != nil {
		logger.Info("received shutdown signal")
	}

	errs = append(errs, s.shutdown(opened)...)

	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}

	// Marks the updater as finished if no session ever became ready.
	once.Do(func() { close(uptimeDone) })
	<-uptimeDone

	logger.Info("shutdown complete")
	return errors.Join(errs...)
}

func (s *Supervisor) shutdown(opened []chat.Session) []error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.server.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}

	for _, session := range slices.Backward(opened) {
		if err := session.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s session: %w", session.Name(), err))
		}
	}

	return errs
}
