package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	// InvocationIDKey holds the identifier of the chat command being handled.
	InvocationIDKey contextKey = "invocation_id"

	// RequestIDKey holds the unique HTTP request identifier.
	RequestIDKey contextKey = "request_id"

	// PlatformKey holds the messaging platform the invocation arrived on.
	PlatformKey contextKey = "platform"

	// CommandKey holds the command name for this invocation.
	CommandKey contextKey = "command"

	// AuthorKey holds the identity of the user who issued the command.
	AuthorKey contextKey = "author"
)

// WithInvocationID injects the invocation ID into context.
func WithInvocationID(ctx context.Context, invocationID string) context.Context {
	return context.WithValue(ctx, InvocationIDKey, invocationID)
}

// WithRequestID injects request ID into context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithPlatform injects the messaging platform name into context.
func WithPlatform(ctx context.Context, platform string) context.Context {
	return context.WithValue(ctx, PlatformKey, platform)
}

// WithCommand injects the command name into context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, CommandKey, command)
}

// WithAuthor injects the command author into context.
func WithAuthor(ctx context.Context, author string) context.Context {
	return context.WithValue(ctx, AuthorKey, author)
}

// GetInvocationID extracts the invocation ID from context.
func GetInvocationID(ctx context.Context) string {
	if invocationID, ok := ctx.Value(InvocationIDKey).(string); ok {
		return invocationID
	}
	return ""
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetPlatform extracts the messaging platform from context.
func GetPlatform(ctx context.Context) string {
	if platform, ok := ctx.Value(PlatformKey).(string); ok {
		return platform
	}
	return ""
}

// GetCommand extracts the command name from context.
func GetCommand(ctx context.Context) string {
	if command, ok := ctx.Value(CommandKey).(string); ok {
		return command
	}
	return ""
}

// GetAuthor extracts the command author from context.
func GetAuthor(ctx context.Context) string {
	if author, ok := ctx.Value(AuthorKey).(string); ok {
		return author
	}
	return ""
}

// GenerateInvocationID generates a unique identifier for a chat command (UUID).
func GenerateInvocationID() string {
	return uuid.New().String()
}

// GenerateRequestID generates a unique request identifier (UUID).
func GenerateRequestID() string {
	return uuid.New().String()
}
