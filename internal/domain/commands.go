package domain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/davidbz/purposebot/internal/observability"
)

// Command names.
const (
	CommandPurpose = "purpose"
	CommandMoar    = "moar"
	CommandAdd     = "add"
	CommandHelp    = "help"
)

// Fixed replies.
const (
	PurposeUsage = "Please provide a question or statement, for example: " +
		"`!purpose I'm worried about my future in a world where there is AGI.`"
	MoarUsage = "Please provide something to expand on, for example: " +
		"`!moar tell me more about finding meaning in work.`"

	PurposeApology = "Sorry, I had trouble generating a response. Please try again later."
	MoarApology    = "Sorry, I couldn't dig any deeper right now. Please try !moar again later."

	GenericApology = "Oops, something went wrong on my end. Please try again."
	DispatchError  = "Sorry, I couldn't run that command. Type !help for the list of commands."
)

// PersonaConfig binds a persona prompt and its fixed replies to a command name.
type PersonaConfig struct {
	Name     string
	Usage    string
	Apology  string
	Persona  string
	Sampling Sampling

	// TrackErrors enables the command-specific error counter.
	TrackErrors bool
}

// PersonaCommand forwards its argument to the completer under a fixed persona.
type PersonaCommand struct {
	config    PersonaConfig
	completer Completer
	recorder  Recorder
}

// NewPersonaCommand creates a persona command.
func NewPersonaCommand(config PersonaConfig, completer Completer, recorder Recorder) (*PersonaCommand, error) {
	if config.Name == "" {
		return nil, errors.New("command name cannot be empty")
	}

	if config.Persona == "" {
		return nil, fmt.Errorf("persona prompt for %s cannot be empty", config.Name)
	}

	if completer == nil {
		return nil, errors.New("completer cannot be nil")
	}

	return &PersonaCommand{
		config:    config,
		completer: completer,
		recorder:  recorder,
	}, nil
}

// Name returns the command name.
func (c *PersonaCommand) Name() string {
	return c.config.Name
}

// Syntax returns the argument synopsis.
func (c *PersonaCommand) Syntax() string {
	return "<text>"
}

// Handle sends the argument to the completer and maps the outcome to a reply.
func (c *PersonaCommand) Handle(ctx context.Context, inv Invocation) (string, error) {
	if strings.TrimSpace(inv.Args) == "" {
		return c.config.Usage, nil
	}

	logger := observability.FromContext(ctx)

	resp, err := c.completer.Complete(ctx, &CompletionRequest{
		Persona:  c.config.Persona,
		Prompt:   inv.Args,
		Sampling: c.config.Sampling,
	})
	if err != nil {
		if errors.Is(err, ErrProvider) {
			c.recorder.IncProviderErrors()
			if c.config.TrackErrors {
				c.recorder.IncCommandErrors(c.config.Name)
			}
			logger.Error("completion provider failed",
				observability.String("input", inv.Args),
				observability.Error(err))
			return c.config.Apology, nil
		}

		c.recorder.IncGeneralExceptions()
		logger.Error("completion failed unexpectedly",
			observability.String("input", inv.Args),
			observability.Error(err))
		return GenericApology, nil
	}

	reply := strings.TrimSpace(resp.Content)
	if reply == "" {
		c.recorder.IncGeneralExceptions()
		logger.Error("completion returned blank text",
			observability.String("input", inv.Args),
			observability.String("model", resp.Model))
		return GenericApology, nil
	}

	c.recorder.IncInteractions()

	logger.Info("completion succeeded",
		observability.String("input", inv.Args),
		observability.String("output", reply),
		observability.String("model", resp.Model),
		observability.Int("tokens", resp.Usage.TotalTokens))

	return reply, nil
}

// AddCommand replies with the sum of two integers.
type AddCommand struct {
	recorder Recorder
}

// NewAddCommand creates the add command.
func NewAddCommand(recorder Recorder) *AddCommand {
	return &AddCommand{recorder: recorder}
}

// Name returns the command name.
func (c *AddCommand) Name() string {
	return CommandAdd
}

// Syntax returns the argument synopsis.
func (c *AddCommand) Syntax() string {
	return "<a> <b>"
}

// Handle parses exactly two integers and replies with their sum.
func (c *AddCommand) Handle(ctx context.Context, inv Invocation) (string, error) {
	fields := strings.Fields(inv.Args)
	if len(fields) != 2 {
		return "", fmt.Errorf("%w: add takes exactly two integers, got %d arguments", ErrBadArgument, len(fields))
	}

	a, ok := new(big.Int).SetString(fields[0], 10)
	if !ok {
		return "", fmt.Errorf("%w: %q is not an integer", ErrBadArgument, fields[0])
	}

	b, ok := new(big.Int).SetString(fields[1], 10)
	if !ok {
		return "", fmt.Errorf("%w: %q is not an integer", ErrBadArgument, fields[1])
	}

	sum := new(big.Int).Add(a, b)
	c.recorder.IncInteractions()

	observability.FromContext(ctx).Info("add succeeded",
		observability.String("input", inv.Args),
		observability.String("output", sum.String()))

	return fmt.Sprintf("The sum of %s and %s is %s.", a, b, sum), nil
}

// HelpCommand lists the commands registered with a router.
type HelpCommand struct {
	router *Router
}

// NewHelpCommand creates the help command for router.
func NewHelpCommand(router *Router) *HelpCommand {
	return &HelpCommand{router: router}
}

// Name returns the command name.
func (c *HelpCommand) Name() string {
	return CommandHelp
}

// Syntax returns the argument synopsis.
func (c *HelpCommand) Syntax() string {
	return ""
}

// Handle lists the registered commands in name order.
func (c *HelpCommand) Handle(_ context.Context, _ Invocation) (string, error) {
	commands := c.router.Commands()
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})

	lines := make([]string, 0, len(commands)+1)
	lines = append(lines, "Commands:")
	for _, cmd := range commands {
		line := c.router.Prefix() + cmd.Name()
		if syntax := cmd.Syntax(); syntax != "" {
			line += " " + syntax
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
