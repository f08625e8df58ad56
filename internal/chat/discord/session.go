package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/davidbz/purposebot/internal/chat"
	"github.com/davidbz/purposebot/internal/observability"
)

const (
	// Platform identifies Discord invocations in logs.
	Platform = "discord"

	// MaxMessageLength is the Discord limit on message content.
	MaxMessageLength = 2000

	intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent
)

// sender is the part of *discordgo.Session used to reply.
type sender interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Session relays Discord messages to a dispatcher.
type Session struct {
	dg         *discordgo.Session
	dispatcher chat.Dispatcher

	mu      sync.Mutex
	ctx     context.Context
	onReady []func()
}

// NewSession creates a Discord session. No connection is made until Open.
func NewSession(cfg *Config, dispatcher chat.Dispatcher) (*Session, error) {
	if cfg == nil || cfg.Token == "" {
		return nil, errors.New("discord token cannot be empty")
	}

	if dispatcher == nil {
		return nil, errors.New("dispatcher cannot be nil")
	}

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	dg.Identify.Intents = intents

	s := &Session{
		dg:         dg,
		dispatcher: dispatcher,
		ctx:        context.Background(),
	}

	dg.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		s.handleReady(r)
	})
	dg.AddHandler(func(ds *discordgo.Session, m *discordgo.MessageCreate) {
		if ds.State == nil || ds.State.User == nil {
			return
		}
		s.onMessage(s.context(), ds, ds.State.User.ID, m)
	})

	return s, nil
}

// Name returns the platform name.
func (s *Session) Name() string {
	return Platform
}

// OnReady registers fn to run whenever the gateway reports ready.
func (s *Session) OnReady(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onReady = append(s.onReady, fn)
}

// Open connects to the Discord gateway. Handlers run with ctx as their parent.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	if err := s.dg.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	return nil
}

// Close disconnects from the gateway.
func (s *Session) Close() error {
	if err := s.dg.Close(); err != nil {
		return fmt.Errorf("failed to close discord session: %w", err)
	}
	return nil
}

func (s *Session) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctx
}

func (s *Session) handleReady(r *discordgo.Ready) {
	ctx := observability.WithPlatform(s.context(), Platform)

	username := ""
	if r != nil && r.User != nil {
		username = r.User.Username
	}
	observability.FromContext(ctx).Info("logged in", observability.String("user", username))

	s.mu.Lock()
	hooks := append([]func(){}, s.onReady...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// onMessage handles one MessageCreate event.
func (s *Session) onMessage(ctx context.Context, out sender, selfID string, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil {
		return
	}

	if m.Author.ID == selfID || m.Author.Bot {
		return
	}

	inv, ok := s.dispatcher.Parse(Platform, m.Author.Username, m.Content)
	if !ok {
		return
	}

	reply := s.dispatcher.Dispatch(ctx, inv)

	for _, chunk := range chat.Split(reply, MaxMessageLength) {
		if _, err := out.ChannelMessageSend(m.ChannelID, chunk); err != nil {
			observability.FromContext(ctx).Warn("failed to send reply",
				observability.String("invocation_id", inv.ID),
				observability.String("channel_id", m.ChannelID),
				observability.Error(err))
			return
		}
	}
}
