// Package openai provides the completion client backed by the official
// OpenAI SDK. It converts domain requests into chat completion parameters and
// classifies SDK failures so callers can tell provider errors from bugs.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/purposebot/internal/domain"
	"github.com/davidbz/purposebot/internal/observability"
)

// Provider implements domain.Completer for OpenAI.
type Provider struct {
	client openai.Client
	name   string
}

// NewProvider creates a new OpenAI provider.
func NewProvider(config *Config) (*Provider, error) {
	if config == nil || config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries >= 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Provider{
		client: openai.NewClient(opts...),
		name:   "openai",
	}, nil
}

// Complete sends the persona and prompt as a system/user message pair.
func (p *Provider) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API", observability.String("model", req.Sampling.Model))

	resp, err := p.client.Chat.Completions.New(ctx, p.toSDKParams(req))
	if err != nil {
		return nil, classify(err)
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return p.toDomainResponse(resp)
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// classify wraps provider-attributable failures with domain.ErrProvider.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: OpenAI API returned status %d: %w", domain.ErrProvider, apiErr.StatusCode, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: OpenAI API unreachable: %w", domain.ErrProvider, err)
	}

	return fmt.Errorf("OpenAI API call failed: %w", err)
}

// toSDKParams converts a domain request to SDK ChatCompletionNewParams.
func (p *Provider) toSDKParams(req *domain.CompletionRequest) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Sampling.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.Persona),
			openai.UserMessage(req.Prompt),
		},
		Temperature:      openai.Float(req.Sampling.Temperature),
		TopP:             openai.Float(req.Sampling.TopP),
		PresencePenalty:  openai.Float(req.Sampling.PresencePenalty),
		FrequencyPenalty: openai.Float(req.Sampling.FrequencyPenalty),
	}

	if req.Sampling.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.Sampling.MaxTokens))
	}

	return params
}

// toDomainResponse converts the SDK response, rejecting empty completions.
func (p *Provider) toDomainResponse(resp *openai.ChatCompletion) (*domain.CompletionResponse, error) {
	if len(resp.Choices) == 0 {
		return nil, errors.New("OpenAI API returned no choices")
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("OpenAI API returned empty content (finish reason %q)", resp.Choices[0].FinishReason)
	}

	return &domain.CompletionResponse{
		ID:      resp.ID,
		Model:   string(resp.Model),
		Content: content,
		Usage: domain.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
		FinishTime: time.Now(),
	}, nil
}
