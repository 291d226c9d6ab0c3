// Package command parses free-text bot commands into orchestrator calls and
// renders the results for the chat surface.
package command

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/shlex"
	"go.uber.org/zap"

	"github.com/ubclaunchpad/rocket2.0/internal/entities"
	"github.com/ubclaunchpad/rocket2.0/internal/usecase"
)

// Command handles one top-level command word ("team", "user").
type Command interface {
	Name() string
	Help() string
	Handle(ctx context.Context, callerID string, args []string) (string, error)
}

// Parser tokenizes message text and dispatches to the registered commands.
type Parser struct {
	log      *zap.SugaredLogger
	commands map[string]Command
}

// NewParser registers the team and user commands.
func NewParser(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Parser {
	commands := make(map[string]Command)
	for _, c := range []Command{NewTeamCommand(uc), NewUserCommand(uc)} {
		commands[c.Name()] = c
	}
	return &Parser{
		log:      log.Named("command"),
		commands: commands,
	}
}

// Handle parses raw message text and returns the reply to post. Errors from
// the orchestrator are rendered, never propagated: the chat surface always
// answers with text.
func (p *Parser) Handle(ctx context.Context, callerID, text string) string {
	tokens, err := shlex.Split(stripMention(text))
	if err != nil || len(tokens) == 0 {
		return p.helpText()
	}

	cmd, ok := p.commands[tokens[0]]
	if !ok {
		return p.helpText()
	}

	reply, err := cmd.Handle(ctx, callerID, tokens[1:])
	if err != nil {
		p.log.Errorw("command failed", "error", err, "caller", callerID, "command", tokens[0])
		return renderError(err)
	}
	return reply
}

func (p *Parser) helpText() string {
	names := make([]string, 0, len(p.commands))
	for name := range p.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range names {
		b.WriteString("\n")
		b.WriteString(p.commands[name].Help())
		b.WriteString("\n")
	}
	return b.String()
}

func renderError(err error) string {
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		return "Error: user not found."
	case errors.Is(err, entities.ErrTeamNotFound):
		return "Error: no team found with that name."
	case errors.Is(err, entities.ErrTeamAmbiguous):
		return "Error: more than one team has that name; please fix the duplicates first."
	case errors.Is(err, entities.ErrPermissionDenied):
		return "Error: you do not have permission to do that."
	case errors.Is(err, entities.ErrRemoteAPI):
		return "Error: a GitHub or Slack call failed; nothing was saved."
	case errors.Is(err, entities.ErrInvalidArgument):
		return "Error: " + err.Error()
	default:
		return "Error: something went wrong."
	}
}
