package irc

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lrstanley/girc"

	"github.com/davidbz/purposebot/internal/chat"
	"github.com/davidbz/purposebot/internal/observability"
)

const (
	// Platform identifies IRC invocations in logs.
	Platform = "irc"

	// MaxMessageBytes keeps a PRIVMSG plus its prefix under the 512 byte
	// line limit.
	MaxMessageBytes = 400

	closeTimeout = 5 * time.Second
)

// Session relays IRC channel and private messages to a dispatcher.
type Session struct {
	cfg        Config
	client     *girc.Client
	dispatcher chat.Dispatcher

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	onReady []func()
}

// NewSession creates an IRC session. No connection is made until Open.
func NewSession(cfg *Config, dispatcher chat.Dispatcher) (*Session, error) {
	if !cfg.Enabled() {
		return nil, errors.New("irc server cannot be empty")
	}

	if dispatcher == nil {
		return nil, errors.New("dispatcher cannot be nil")
	}

	client := girc.New(girc.Config{
		Server: cfg.Server,
		Port:   cfg.Port,
		Nick:   cfg.Nick,
		User:   "purposebot",
		Name:   "purposebot",
		SSL:    cfg.TLS,
	})

	if cfg.SASLUser != "" && cfg.SASLPass != "" {
		client.Config.SASL = &girc.SASLPlain{
			User: cfg.SASLUser,
			Pass: cfg.SASLPass,
		}
	}

	s := &Session{
		cfg:        *cfg,
		client:     client,
		dispatcher: dispatcher,
		ctx:        context.Background(),
	}

	client.Handlers.AddBg(girc.CONNECTED, func(c *girc.Client, _ girc.Event) {
		s.handleConnected(c)
	})
	client.Handlers.AddBg(girc.PRIVMSG, func(c *girc.Client, e girc.Event) {
		if e.Source == nil {
			return
		}
		s.onMessage(s.context(), func(msg string) { c.Cmd.Reply(e, msg) }, e.Source.Name, e.Last())
	})

	return s, nil
}

// Name returns the platform name.
func (s *Session) Name() string {
	return Platform
}

// OnReady registers fn to run after every successful registration.
func (s *Session) OnReady(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onReady = append(s.onReady, fn)
}

// Open starts the connection loop in the background. The loop reconnects
// after ReconnectDelay until ctx is cancelled or Close is called.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return errors.New("irc session already open")
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.ctx = runCtx
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		<-runCtx.Done()
		s.client.Close()
	}()
	go s.run(runCtx, s.done)

	return nil
}

// Close stops the connection loop and waits for it to exit.
func (s *Session) Close() error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-time.After(closeTimeout):
		return errors.New("timed out waiting for irc connection to close")
	}
}

func (s *Session) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctx
}

func (s *Session) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	logger := observability.FromContext(observability.WithPlatform(ctx, Platform))

	for ctx.Err() == nil {
		logger.Info("connecting to server",
			observability.String("server", s.cfg.Server),
			observability.Int("port", s.cfg.Port),
			observability.Bool("tls", s.cfg.TLS),
			observability.Bool("sasl", s.client.Config.SASL != nil))

		err := s.client.Connect()
		if ctx.Err() != nil {
			return
		}

		logger.Warn("disconnected from server",
			observability.Error(err),
			observability.Duration("retry_in", s.cfg.ReconnectDelay))

		select {
		case <-time.After(s.cfg.ReconnectDelay):
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) handleConnected(c *girc.Client) {
	ctx := observability.WithPlatform(s.context(), Platform)

	if len(s.cfg.Channels) > 0 {
		observability.FromContext(ctx).Info("joining channels",
			observability.Any("channels", s.cfg.Channels))
		c.Cmd.Join(s.cfg.Channels...)
	}

	s.mu.Lock()
	hooks := append([]func(){}, s.onReady...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// onMessage handles one PRIVMSG. reply sends a line back to where the
// message came from.
func (s *Session) onMessage(ctx context.Context, reply func(string), author, content string) {
	if author == "" || author == s.cfg.Nick {
		return
	}

	inv, ok := s.dispatcher.Parse(Platform, author, content)
	if !ok {
		return
	}

	for _, line := range chat.SplitLinesBytes(s.dispatcher.Dispatch(ctx, inv), MaxMessageBytes) {
		reply(line)
	}
}
