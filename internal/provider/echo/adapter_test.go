package echo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/purposebot/internal/domain"
	"github.com/davidbz/purposebot/internal/provider/echo"
)

func TestNewProvider(t *testing.T) {
	provider := echo.NewProvider()

	require.NotNil(t, provider)
	require.Equal(t, "echo", provider.Name())
}

func TestComplete_Success(t *testing.T) {
	provider := echo.NewProvider()
	ctx := context.Background()

	req := &domain.CompletionRequest{
		Persona:  "You are a thoughtful guide.",
		Prompt:   "Hello world",
		Sampling: domain.Sampling{Model: "gpt-4o", MaxTokens: 350},
	}

	resp, err := provider.Complete(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Equal(t, "gpt-4o", resp.Model)
	require.Equal(t, "[gpt-4o]: Hello world", resp.Content)
	require.Equal(t, 7, resp.Usage.PromptTokens)     // 5 persona words + 2 prompt words
	require.Equal(t, 3, resp.Usage.CompletionTokens) // "[gpt-4o]:" "Hello" "world"
	require.Equal(t, 10, resp.Usage.TotalTokens)
	require.NotEmpty(t, resp.ID)
	require.False(t, resp.FinishTime.IsZero())
}

func TestComplete_DefaultModelTag(t *testing.T) {
	provider := echo.NewProvider()

	resp, err := provider.Complete(context.Background(), &domain.CompletionRequest{Prompt: "ping"})

	require.NoError(t, err)
	require.Equal(t, "[echo]: ping", resp.Content)
}

func TestComplete_NilRequest(t *testing.T) {
	provider := echo.NewProvider()
	ctx := context.Background()

	resp, err := provider.Complete(ctx, nil)

	require.Error(t, err)
	require.Nil(t, resp)
	require.Contains(t, err.Error(), "request cannot be nil")
}

func TestComplete_CancelledContext(t *testing.T) {
	provider := echo.NewProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := provider.Complete(ctx, &domain.CompletionRequest{Prompt: "Hello"})

	require.Nil(t, resp)
	require.ErrorIs(t, err, domain.ErrProvider)
	require.ErrorIs(t, err, context.Canceled)
}
