package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/purposebot/internal/chat"
	"github.com/davidbz/purposebot/internal/chat/discord"
	"github.com/davidbz/purposebot/internal/chat/irc"
	"github.com/davidbz/purposebot/internal/config"
	"github.com/davidbz/purposebot/internal/domain"
	"github.com/davidbz/purposebot/internal/http"
	"github.com/davidbz/purposebot/internal/http/middleware"
	"github.com/davidbz/purposebot/internal/metrics"
	"github.com/davidbz/purposebot/internal/observability"
	"github.com/davidbz/purposebot/internal/provider/echo"
	"github.com/davidbz/purposebot/internal/provider/openai"
	"github.com/davidbz/purposebot/internal/provider/registry"
	"github.com/davidbz/purposebot/internal/supervisor"
)

func main() {
	os.Exit(run())
}

func run() int {
	started := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container := buildContainer(started)

	// Resolve config first so a bad environment fails before any network activity.
	if err := container.Invoke(func(logger *zap.Logger) {
		observability.SetLogger(logger)
	}); err != nil {
		observability.FromContext(ctx).Error("failed to initialize", observability.Error(dig.RootCause(err)))
		return 1
	}
	defer func() { _ = observability.FromContext(ctx).Sync() }()

	err := container.Invoke(func(s *supervisor.Supervisor) error {
		return s.Run(ctx)
	})
	if err != nil {
		observability.FromContext(ctx).Error("bot stopped with error", observability.Error(dig.RootCause(err)))
		return 1
	}

	return 0
}

func buildContainer(started time.Time) *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Metrics
	if err := container.Provide(func() *metrics.Registry {
		return metrics.NewRegistry(domain.CommandMoar)
	}); err != nil {
		log.Fatalf("Failed to provide metrics registry: %v", err)
	}
	if err := container.Provide(func(reg *metrics.Registry, cfg *config.UptimeConfig) *metrics.Uptime {
		return metrics.NewUptime(reg, started, cfg.Interval)
	}); err != nil {
		log.Fatalf("Failed to provide uptime updater: %v", err)
	}

	// Completion providers
	if err := container.Provide(openai.NewProvider); err != nil {
		log.Fatalf("Failed to provide OpenAI provider: %v", err)
	}
	if err := container.Provide(func(openaiProvider *openai.Provider) (domain.ProviderRegistry, error) {
		reg, err := registry.NewRegistry(openaiProvider, echo.NewProvider())
		if err != nil {
			return nil, fmt.Errorf("failed to register completion providers: %w", err)
		}
		return reg, nil
	}); err != nil {
		log.Fatalf("Failed to provide provider registry: %v", err)
	}
	if err := container.Provide(func(reg domain.ProviderRegistry, cfg *config.BotConfig) (domain.Completer, error) {
		provider, err := reg.Select(cfg.Provider)
		if err != nil {
			return nil, err
		}
		return provider, nil
	}); err != nil {
		log.Fatalf("Failed to provide completer: %v", err)
	}

	// Domain Services
	if err := container.Provide(newRouter); err != nil {
		log.Fatalf("Failed to provide command router: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(reg *metrics.Registry) *http.Handler {
		return http.NewHandler(reg)
	}); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide HTTP middleware: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	// Messaging
	if err := container.Provide(newSessions); err != nil {
		log.Fatalf("Failed to provide messaging sessions: %v", err)
	}

	// Supervisor
	if err := container.Provide(func(
		server *http.Server,
		uptime *metrics.Uptime,
		shutdown *config.ShutdownConfig,
		sessions []chat.Session,
	) (*supervisor.Supervisor, error) {
		return supervisor.New(server, uptime, shutdown, sessions)
	}); err != nil {
		log.Fatalf("Failed to provide supervisor: %v", err)
	}

	return container
}

// newRouter registers the bot's commands.
func newRouter(
	cfg *config.Config,
	completer domain.Completer,
	recorder *metrics.Registry,
) (*domain.Router, error) {
	router, err := domain.NewRouter(cfg.Bot.Prefix, recorder)
	if err != nil {
		return nil, err
	}

	purpose, err := domain.NewPersonaCommand(domain.PersonaConfig{
		Name:     domain.CommandPurpose,
		Usage:    domain.PurposeUsage,
		Apology:  domain.PurposeApology,
		Persona:  cfg.Purpose.Prompt,
		Sampling: cfg.Purpose.Sampling(),
	}, completer, recorder)
	if err != nil {
		return nil, err
	}

	moar, err := domain.NewPersonaCommand(domain.PersonaConfig{
		Name:        domain.CommandMoar,
		Usage:       domain.MoarUsage,
		Apology:     domain.MoarApology,
		Persona:     cfg.Moar.Prompt,
		Sampling:    cfg.Moar.Sampling(),
		TrackErrors: true,
	}, completer, recorder)
	if err != nil {
		return nil, err
	}

	for _, cmd := range []domain.Command{
		purpose,
		moar,
		domain.NewAddCommand(recorder),
		domain.NewHelpCommand(router),
	} {
		if err := router.Register(cmd); err != nil {
			return nil, err
		}
	}

	return router, nil
}

// newSessions builds the Discord session and, when configured, the IRC one.
func newSessions(
	discordCfg *discord.Config,
	ircCfg *irc.Config,
	router *domain.Router,
) ([]chat.Session, error) {
	discordSession, err := discord.NewSession(discordCfg, router)
	if err != nil {
		return nil, err
	}

	sessions := []chat.Session{discordSession}

	if ircCfg.Enabled() {
		ircSession, ircErr := irc.NewSession(ircCfg, router)
		if ircErr != nil {
			return nil, ircErr
		}
		sessions = append(sessions, ircSession)
	}

	return sessions, nil
}
