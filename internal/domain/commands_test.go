package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/purposebot/internal/domain"
	"github.com/davidbz/purposebot/internal/mocks"
)

func purposeConfig() domain.PersonaConfig {
	return domain.PersonaConfig{
		Name:    domain.CommandPurpose,
		Usage:   domain.PurposeUsage,
		Apology: domain.PurposeApology,
		Persona: "You help people find purpose.",
		Sampling: domain.Sampling{
			Model:            "gpt-4o",
			MaxTokens:        350,
			Temperature:      0.8,
			TopP:             1.0,
			PresencePenalty:  0.2,
			FrequencyPenalty: 0.1,
		},
		TrackErrors: false,
	}
}

func moarConfig() domain.PersonaConfig {
	cfg := purposeConfig()
	cfg.Name = domain.CommandMoar
	cfg.Usage = domain.MoarUsage
	cfg.Apology = domain.MoarApology
	cfg.Persona = "You expand on ideas."
	cfg.TrackErrors = true
	return cfg
}

func invocation(command, args string) domain.Invocation {
	return domain.Invocation{
		ID:      "inv-1",
		Command: command,
		Author:  "alice",
		Args:    args,
	}
}

func TestNewPersonaCommand(t *testing.T) {
	t.Run("should reject empty persona", func(t *testing.T) {
		cfg := purposeConfig()
		cfg.Persona = ""

		cmd, err := domain.NewPersonaCommand(cfg, mocks.NewMockCompleter(t), mocks.NewMockRecorder(t))

		require.Error(t, err)
		require.Nil(t, cmd)
		require.Contains(t, err.Error(), "persona prompt for purpose cannot be empty")
	})

	t.Run("should reject nil completer", func(t *testing.T) {
		cmd, err := domain.NewPersonaCommand(purposeConfig(), nil, mocks.NewMockRecorder(t))

		require.Error(t, err)
		require.Nil(t, cmd)
	})

	t.Run("should expose name and syntax", func(t *testing.T) {
		cmd, err := domain.NewPersonaCommand(purposeConfig(), mocks.NewMockCompleter(t), mocks.NewMockRecorder(t))

		require.NoError(t, err)
		require.Equal(t, "purpose", cmd.Name())
		require.Equal(t, "<text>", cmd.Syntax())
	})
}

func TestPersonaCommand_Handle(t *testing.T) {
	t.Run("should reply with usage hint for empty argument", func(t *testing.T) {
		completer := mocks.NewMockCompleter(t)
		recorder := mocks.NewMockRecorder(t)

		cmd, err := domain.NewPersonaCommand(purposeConfig(), completer, recorder)
		require.NoError(t, err)

		for _, args := range []string{"", "   ", "\n\t"} {
			reply, handleErr := cmd.Handle(context.Background(), invocation("purpose", args))

			require.NoError(t, handleErr)
			require.Equal(t, domain.PurposeUsage, reply)
		}

		completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
		recorder.AssertNotCalled(t, "IncInteractions")
	})

	t.Run("should trim generated text and count the interaction", func(t *testing.T) {
		completer := mocks.NewMockCompleter(t)
		recorder := mocks.NewMockRecorder(t)
		cfg := purposeConfig()

		completer.EXPECT().
			Complete(mock.Anything, mock.MatchedBy(func(req *domain.CompletionRequest) bool {
				return req.Persona == cfg.Persona &&
					req.Prompt == "what should I do with my life?" &&
					req.Sampling == cfg.Sampling
			})).
			Return(&domain.CompletionResponse{
				ID:      "chatcmpl-1",
				Model:   "gpt-4o",
				Content: "\n  Build things that matter.  \n",
				Usage:   domain.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
			}, nil).
			Once()
		recorder.EXPECT().IncInteractions().Return().Once()

		cmd, err := domain.NewPersonaCommand(cfg, completer, recorder)
		require.NoError(t, err)

		reply, err := cmd.Handle(context.Background(), invocation("purpose", "what should I do with my life?"))

		require.NoError(t, err)
		require.Equal(t, "Build things that matter.", reply)
	})

	t.Run("should reply with command apology on provider error", func(t *testing.T) {
		completer := mocks.NewMockCompleter(t)
		recorder := mocks.NewMockRecorder(t)

		completer.EXPECT().
			Complete(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: 429 rate limited", domain.ErrProvider)).
			Once()
		recorder.EXPECT().IncProviderErrors().Return().Once()

		cmd, err := domain.NewPersonaCommand(purposeConfig(), completer, recorder)
		require.NoError(t, err)

		reply, err := cmd.Handle(context.Background(), invocation("purpose", "hello"))

		require.NoError(t, err)
		require.Equal(t, domain.PurposeApology, reply)
		recorder.AssertNotCalled(t, "IncCommandErrors", mock.Anything)
		recorder.AssertNotCalled(t, "IncInteractions")
	})

	t.Run("should count command errors when tracking is enabled", func(t *testing.T) {
		completer := mocks.NewMockCompleter(t)
		recorder := mocks.NewMockRecorder(t)

		completer.EXPECT().
			Complete(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: invalid api key", domain.ErrProvider)).
			Once()
		recorder.EXPECT().IncProviderErrors().Return().Once()
		recorder.EXPECT().IncCommandErrors("moar").Return().Once()

		cmd, err := domain.NewPersonaCommand(moarConfig(), completer, recorder)
		require.NoError(t, err)

		reply, err := cmd.Handle(context.Background(), invocation("moar", "hello"))

		require.NoError(t, err)
		require.Equal(t, domain.MoarApology, reply)
	})

	t.Run("should treat blank generated text as a general failure", func(t *testing.T) {
		completer := mocks.NewMockCompleter(t)
		recorder := mocks.NewMockRecorder(t)

		completer.EXPECT().
			Complete(mock.Anything, mock.Anything).
			Return(&domain.CompletionResponse{Model: "gpt-4o", Content: " \n\t "}, nil).
			Once()
		recorder.EXPECT().IncGeneralExceptions().Return().Once()

		cmd, err := domain.NewPersonaCommand(purposeConfig(), completer, recorder)
		require.NoError(t, err)

		reply, err := cmd.Handle(context.Background(), invocation("purpose", "why am I here?"))

		require.NoError(t, err)
		require.Equal(t, domain.GenericApology, reply)
		recorder.AssertNotCalled(t, "IncInteractions")
		recorder.AssertNotCalled(t, "IncProviderErrors")
	})

	t.Run("should reply with generic apology on unexpected error", func(t *testing.T) {
		completer := mocks.NewMockCompleter(t)
		recorder := mocks.NewMockRecorder(t)

		completer.EXPECT().
			Complete(mock.Anything, mock.Anything).
			Return(nil, errors.New("completion returned no choices")).
			Once()
		recorder.EXPECT().IncGeneralExceptions().Return().Once()

		cmd, err := domain.NewPersonaCommand(moarConfig(), completer, recorder)
		require.NoError(t, err)

		reply, err := cmd.Handle(context.Background(), invocation("moar", "hello"))

		require.NoError(t, err)
		require.Equal(t, domain.GenericApology, reply)
		recorder.AssertNotCalled(t, "IncProviderErrors")
		recorder.AssertNotCalled(t, "IncCommandErrors", mock.Anything)
	})
}

func TestAddCommand_Handle(t *testing.T) {
	t.Run("should reply with the sum and count the interaction", func(t *testing.T) {
		recorder := mocks.NewMockRecorder(t)
		recorder.EXPECT().IncInteractions().Return().Once()

		reply, err := domain.NewAddCommand(recorder).Handle(context.Background(), invocation("add", "2 3"))

		require.NoError(t, err)
		require.Equal(t, "The sum of 2 and 3 is 5.", reply)
	})

	t.Run("should handle negative and large integers", func(t *testing.T) {
		recorder := mocks.NewMockRecorder(t)
		recorder.EXPECT().IncInteractions().Return().Twice()
		cmd := domain.NewAddCommand(recorder)

		reply, err := cmd.Handle(context.Background(), invocation("add", "-7 +2"))
		require.NoError(t, err)
		require.Equal(t, "The sum of -7 and 2 is -5.", reply)

		reply, err = cmd.Handle(context.Background(), invocation("add", "9223372036854775807 1"))
		require.NoError(t, err)
		require.Equal(t, "The sum of 9223372036854775807 and 1 is 9223372036854775808.", reply)
	})

	tests := []struct {
		name string
		args string
	}{
		{name: "no arguments", args: ""},
		{name: "one argument", args: "2"},
		{name: "three arguments", args: "1 2 3"},
		{name: "not an integer", args: "two 3"},
		{name: "decimal", args: "2.5 3"},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			recorder := mocks.NewMockRecorder(t)

			reply, err := domain.NewAddCommand(recorder).Handle(context.Background(), invocation("add", tt.args))

			require.ErrorIs(t, err, domain.ErrBadArgument)
			require.Empty(t, reply)
			recorder.AssertNotCalled(t, "IncInteractions")
		})
	}
}
