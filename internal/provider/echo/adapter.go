// Package echo provides an offline provider that echoes the prompt back.
// It implements domain.Provider without making external API calls, giving
// deterministic replies for local runs and tests.
package echo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davidbz/purposebot/internal/domain"
	"github.com/davidbz/purposebot/internal/observability"
)

const providerName = "echo"

// Provider implements domain.Provider by echoing the prompt.
type Provider struct {
	name string
}

// NewProvider creates a new echo provider.
// No configuration is required as this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{
		name: providerName,
	}
}

// Complete returns the prompt tagged with the requested model.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProvider, err)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("echoing request")

	content := buildEchoContent(req)

	promptTokens := countTokens(req.Persona) + countTokens(req.Prompt)
	completionTokens := countTokens(content)

	logger.Debug("echo completed",
		observability.Int("prompt_tokens", promptTokens),
		observability.Int("completion_tokens", completionTokens),
	)

	return &domain.CompletionResponse{
		ID:      fmt.Sprintf("echo-%d", time.Now().UnixNano()),
		Model:   req.Sampling.Model,
		Content: content,
		Usage: domain.Usage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
		},
		FinishTime: time.Now(),
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// buildEchoContent renders the reply for req.
func buildEchoContent(req *domain.CompletionRequest) string {
	if strings.TrimSpace(req.Prompt) == "" {
		return ""
	}

	model := req.Sampling.Model
	if model == "" {
		model = providerName
	}
	return fmt.Sprintf("[%s]: %s", model, req.Prompt)
}

// countTokens performs simple word-based token counting.
func countTokens(content string) int {
	return len(strings.Fields(content))
}
