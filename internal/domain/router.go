package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/davidbz/purposebot/internal/observability"
)

// Router parses prefixed chat messages and dispatches them to commands.
type Router struct {
	mu       sync.RWMutex
	prefix   string
	commands map[string]Command
	recorder Recorder
	now      func() time.Time
}

// NewRouter creates a router for messages starting with prefix.
func NewRouter(prefix string, recorder Recorder) (*Router, error) {
	if prefix == "" {
		return nil, errors.New("command prefix cannot be empty")
	}

	if recorder == nil {
		return nil, errors.New("recorder cannot be nil")
	}

	return &Router{
		mu:       sync.RWMutex{},
		prefix:   prefix,
		commands: make(map[string]Command),
		recorder: recorder,
		now:      time.Now,
	}, nil
}

// Register adds a command to the router.
func (r *Router) Register(cmd Command) error {
	if cmd == nil {
		return errors.New("command cannot be nil")
	}

	name := cmd.Name()
	if name == "" {
		return errors.New("command name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}

	r.commands[name] = cmd
	return nil
}

// Commands returns all registered commands.
func (r *Router) Commands() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	return cmds
}

// Prefix returns the command prefix.
func (r *Router) Prefix() string {
	return r.prefix
}

// Parse extracts an invocation from message content. Messages that do not
// start with the prefix followed by a command name are not invocations.
func (r *Router) Parse(platform, author, content string) (Invocation, bool) {
	if !strings.HasPrefix(content, r.prefix) {
		return Invocation{}, false
	}

	rest := content[len(r.prefix):]
	name, args := rest, ""
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		name, args = rest[:i], strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
	}

	if name == "" {
		return Invocation{}, false
	}

	return Invocation{
		ID:        observability.GenerateInvocationID(),
		Platform:  platform,
		Command:   name,
		Author:    author,
		Args:      args,
		Timestamp: r.now(),
	}, true
}

// Dispatch runs the command named by inv and returns the reply to send.
// It never fails: every error is mapped to a fixed reply and counted.
func (r *Router) Dispatch(ctx context.Context, inv Invocation) string {
	ctx = observability.WithInvocationID(ctx, inv.ID)
	ctx = observability.WithPlatform(ctx, inv.Platform)
	ctx = observability.WithCommand(ctx, inv.Command)
	ctx = observability.WithAuthor(ctx, inv.Author)

	r.mu.RLock()
	cmd, ok := r.commands[inv.Command]
	r.mu.RUnlock()

	if !ok {
		return r.dispatchError(ctx, fmt.Errorf("%w: %s", ErrUnknownCommand, inv.Command))
	}

	return r.run(ctx, cmd, inv)
}

// run executes one handler invocation under the latency timer.
func (r *Router) run(ctx context.Context, cmd Command, inv Invocation) (reply string) {
	defer r.measure()()

	defer func() {
		if rec := recover(); rec != nil {
			r.recorder.IncGeneralExceptions()
			observability.FromContext(ctx).Error("command panicked",
				observability.Any("panic", rec),
				zap.Stack("stack"))
			reply = GenericApology
		}
	}()

	text, err := cmd.Handle(ctx, inv)
	if err != nil {
		return r.dispatchError(ctx, err)
	}

	return text
}

// measure starts a latency observation; the returned func records it.
func (r *Router) measure() func() {
	start := r.now()
	return func() {
		r.recorder.ObserveLatency(r.now().Sub(start))
	}
}

func (r *Router) dispatchError(ctx context.Context, err error) string {
	r.recorder.IncGeneralExceptions()
	observability.FromContext(ctx).Warn("command dispatch failed", observability.Error(err))
	return DispatchError
}
