// Package chat holds the pieces shared by the messaging transports: the
// dispatcher contract they feed and reply chunking.
package chat

import (
	"context"

	"github.com/davidbz/purposebot/internal/domain"
)

// Dispatcher turns raw message content into a reply.
type Dispatcher interface {
	Parse(platform, author, content string) (domain.Invocation, bool)
	Dispatch(ctx context.Context, inv domain.Invocation) string
}

// Session is a connection to one messaging platform.
type Session interface {
	Name() string
	// OnReady registers fn to run each time the session reports ready.
	OnReady(fn func())
	Open(ctx context.Context) error
	Close() error
}
