package domain

import (
	"context"
	"time"
)

// Completer generates text from a hosted language model.
type Completer interface {
	// Complete sends a completion request and returns the full response.
	// Failures attributed to the provider wrap ErrProvider.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// Provider is a Completer that can be selected by name.
type Provider interface {
	Completer

	// Name returns the provider identifier.
	Name() string
}

// ProviderRegistry holds the completion backends a deployment can choose from.
type ProviderRegistry interface {
	Register(providers ...Provider) error
	// Select returns the provider configured by name.
	Select(name string) (Provider, error)
	Names() []string
}

// Recorder receives usage and error counts from command handling.
type Recorder interface {
	IncInteractions()
	IncProviderErrors()
	IncCommandErrors(command string)
	IncGeneralExceptions()
	ObserveLatency(d time.Duration)
}

// Command handles one named chat command.
type Command interface {
	// Name returns the command name without prefix.
	Name() string

	// Syntax returns the argument synopsis shown by help.
	Syntax() string

	// Handle returns the reply for an invocation. A returned error means the
	// invocation could not be dispatched (for example unparsable arguments).
	Handle(ctx context.Context, inv Invocation) (string, error)
}
