package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/purposebot/internal/chat/discord"
	"github.com/davidbz/purposebot/internal/chat/irc"
	"github.com/davidbz/purposebot/internal/domain"
	"github.com/davidbz/purposebot/internal/observability"
	"github.com/davidbz/purposebot/internal/provider/openai"
)

// legacyPromptKey is the variable the first deployment used for the purpose persona.
const legacyPromptKey = "SYSTEM_PROMPT_TEXT"

// Config represents the bot configuration.
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      observability.LogConfig
	Bot      BotConfig
	Uptime   UptimeConfig
	Shutdown ShutdownConfig
	Discord  discord.Config
	IRC      irc.Config
	OpenAI   openai.Config
	Purpose  CommandConfig `envPrefix:"PURPOSE_"`
	Moar     CommandConfig `envPrefix:"MOAR_"`
}

// ServerConfig contains metrics HTTP server settings.
type ServerConfig struct {
	Port         int `env:"METRICS_PORT"          envDefault:"8000"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"10"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"10"`
}

// CORSConfig contains CORS policy settings for the scrape endpoint.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,OPTIONS"`
	MaxAge         int      `env:"CORS_MAX_AGE"                          envDefault:"86400"`
}

// BotConfig contains command parsing and completion backend settings.
type BotConfig struct {
	Prefix   string `env:"BOT_PREFIX"          envDefault:"!"`
	Provider string `env:"COMPLETION_PROVIDER" envDefault:"openai"`
}

// UptimeConfig controls the uptime gauge refresh period.
type UptimeConfig struct {
	Interval time.Duration `env:"UPTIME_INTERVAL" envDefault:"60s"`
}

// ShutdownConfig bounds how long graceful shutdown may take.
type ShutdownConfig struct {
	Timeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// CommandConfig binds a persona prompt and its sampling constants to a command.
// Fields left unset in the environment keep the per-command defaults.
type CommandConfig struct {
	Prompt           string  `env:"PROMPT,required,notEmpty"`
	Model            string  `env:"MODEL"`
	MaxTokens        int     `env:"MAX_TOKENS"`
	Temperature      float64 `env:"TEMPERATURE"`
	TopP             float64 `env:"TOP_P"`
	PresencePenalty  float64 `env:"PRESENCE_PENALTY"`
	FrequencyPenalty float64 `env:"FREQUENCY_PENALTY"`
}

// Sampling returns the generation parameters bound to the command.
func (c CommandConfig) Sampling() domain.Sampling {
	return domain.Sampling{
		Model:            c.Model,
		MaxTokens:        c.MaxTokens,
		Temperature:      c.Temperature,
		TopP:             c.TopP,
		PresencePenalty:  c.PresencePenalty,
		FrequencyPenalty: c.FrequencyPenalty,
	}
}

// DefaultPurpose returns the sampling constants of the purpose command.
func DefaultPurpose() CommandConfig {
	return CommandConfig{
		Model:            "gpt-4o",
		MaxTokens:        350,
		Temperature:      0.8,
		TopP:             1.0,
		PresencePenalty:  0.2,
		FrequencyPenalty: 0.1,
	}
}

// DefaultMoar returns the sampling constants of the moar command.
func DefaultMoar() CommandConfig {
	return CommandConfig{
		Model:            "gpt-4o",
		MaxTokens:        700,
		Temperature:      0.9,
		TopP:             1.0,
		PresencePenalty:  0.4,
		FrequencyPenalty: 0.2,
	}
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	Server   *ServerConfig
	CORS     *CORSConfig
	Log      *observability.LogConfig
	Bot      *BotConfig
	Uptime   *UptimeConfig
	Shutdown *ShutdownConfig
	Discord  *discord.Config
	IRC      *irc.Config
	OpenAI   *openai.Config
}

// Load loads environment files and parses configuration.
// A missing or empty required variable is reported by name in the returned error.
func Load() (*Config, error) {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	cfg := Config{
		Purpose: DefaultPurpose(),
		Moar:    DefaultMoar(),
	}

	opts := env.Options{Environment: environment()}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// environment snapshots the process environment, mapping the legacy prompt
// variable onto PURPOSE_PROMPT when the latter is absent.
func environment() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok {
			vars[key] = value
		}
	}

	if _, ok := vars["PURPOSE_PROMPT"]; !ok {
		if legacy, found := vars[legacyPromptKey]; found {
			vars["PURPOSE_PROMPT"] = legacy
		}
	}

	return vars
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:      dig.Out{},
		Server:   &cfg.Server,
		CORS:     &cfg.CORS,
		Log:      &cfg.Log,
		Bot:      &cfg.Bot,
		Uptime:   &cfg.Uptime,
		Shutdown: &cfg.Shutdown,
		Discord:  &cfg.Discord,
		IRC:      &cfg.IRC,
		OpenAI:   &cfg.OpenAI,
	}
}
