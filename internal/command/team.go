package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ubclaunchpad/rocket2.0/internal/entities"
	"github.com/ubclaunchpad/rocket2.0/internal/usecase"
)

const teamHelp = "Team command reference:\n\n" +
	" @rocket team list\n" +
	" @rocket team view TEAM_NAME\n" +
	" @rocket team create TEAM_NAME [--name DISPLAY_NAME] [--platform PLATFORM]" +
	" [--channel CHANNEL] [--lead SLACK_ID]  (team lead or above)\n" +
	" @rocket team add TEAM_NAME SLACK_ID  (admin or lead of the team)\n" +
	" @rocket team remove TEAM_NAME SLACK_ID  (admin or lead of the team)\n" +
	" @rocket team edit TEAM_NAME [--name DISPLAY_NAME] [--platform PLATFORM]" +
	"  (admin or lead of the team)\n" +
	" @rocket team help"

// TeamCommand handles the team lifecycle subcommands.
type TeamCommand struct {
	uc usecase.TeamUsecaseInterface
}

// NewTeamCommand builds the team command over the orchestrator.
func NewTeamCommand(uc usecase.TeamUsecaseInterface) *TeamCommand {
	return &TeamCommand{uc: uc}
}

func (c *TeamCommand) Name() string { return "team" }

func (c *TeamCommand) Help() string { return teamHelp }

// Handle dispatches a team subcommand.
func (c *TeamCommand) Handle(ctx context.Context, callerID string, args []string) (string, error) {
	if len(args) == 0 {
		return c.Help(), nil
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return c.list(ctx)
	case "view":
		if len(rest) < 1 {
			return c.Help(), nil
		}
		return c.view(ctx, rest[0])
	case "create":
		return c.create(ctx, callerID, rest)
	case "add":
		if len(rest) < 2 {
			return c.Help(), nil
		}
		return c.add(ctx, callerID, rest[0], unescapeUser(rest[1]))
	case "remove":
		if len(rest) < 2 {
			return c.Help(), nil
		}
		return c.remove(ctx, callerID, rest[0], unescapeUser(rest[1]))
	case "edit":
		return c.edit(ctx, callerID, rest)
	default:
		return c.Help(), nil
	}
}

func (c *TeamCommand) list(ctx context.Context) (string, error) {
	teams, err := c.uc.TeamList(ctx)
	if err != nil {
		return "", err
	}
	if len(teams) == 0 {
		return "No teams found.", nil
	}

	var b strings.Builder
	b.WriteString("Teams:\n")
	for _, t := range teams {
		fmt.Fprintf(&b, "- %s (%d members)\n", t.Name, len(t.Members))
	}
	return b.String(), nil
}

func (c *TeamCommand) view(ctx context.Context, slug string) (string, error) {
	team, err := c.uc.TeamView(ctx, slug)
	if err != nil {
		return "", err
	}
	return renderTeam(team), nil
}

func (c *TeamCommand) create(ctx context.Context, callerID string, args []string) (string, error) {
	fs := pflag.NewFlagSet("team create", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	displayName := fs.String("name", "", "display name for the team")
	platform := fs.String("platform", "", "platform tag")
	channel := fs.String("channel", "", "seed the team from a channel's members")
	lead := fs.String("lead", "", "slack id of the team lead")
	if err := fs.Parse(args); err != nil || fs.NArg() < 1 {
		return c.Help(), nil
	}

	slug := fs.Arg(0)
	opts := entities.TeamCreateOptions{
		DisplayName: *displayName,
		Platform:    *platform,
		Channel:     unescapeChannel(*channel),
		LeadID:      unescapeUser(*lead),
	}

	ok, err := c.uc.TeamCreate(ctx, callerID, slug, opts)
	if err != nil {
		return "", err
	}
	if !ok {
		return fmt.Sprintf("Could not save team %s; the GitHub team may already exist.", slug), nil
	}
	return fmt.Sprintf("Created team %s.", slug), nil
}

func (c *TeamCommand) add(ctx context.Context, callerID, slug, memberID string) (string, error) {
	ok, err := c.uc.TeamAdd(ctx, callerID, memberID, slug)
	if err != nil {
		return "", err
	}
	if !ok {
		return fmt.Sprintf("Could not save team %s.", slug), nil
	}
	return fmt.Sprintf("Added <@%s> to team %s.", memberID, slug), nil
}

func (c *TeamCommand) remove(ctx context.Context, callerID, slug, memberID string) (string, error) {
	ok, err := c.uc.TeamRemove(ctx, callerID, slug, memberID)
	if err != nil {
		return "", err
	}
	if !ok {
		return fmt.Sprintf("Could not save team %s.", slug), nil
	}
	return fmt.Sprintf("Removed <@%s> from team %s.", memberID, slug), nil
}

func (c *TeamCommand) edit(ctx context.Context, callerID string, args []string) (string, error) {
	fs := pflag.NewFlagSet("team edit", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	displayName := fs.String("name", "", "display name for the team")
	platform := fs.String("platform", "", "platform tag")
	if err := fs.Parse(args); err != nil || fs.NArg() < 1 {
		return c.Help(), nil
	}

	var edits entities.TeamEdits
	if fs.Changed("name") {
		edits.DisplayName = displayName
	}
	if fs.Changed("platform") {
		edits.Platform = platform
	}

	slug := fs.Arg(0)
	ok, err := c.uc.TeamEdit(ctx, callerID, slug, edits)
	if err != nil {
		return "", err
	}
	if !ok {
		return fmt.Sprintf("Could not save team %s.", slug), nil
	}
	return fmt.Sprintf("Edited team %s.", slug), nil
}

func renderTeam(t *entities.Team) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Team %s", t.Name)
	if t.DisplayName != "" {
		fmt.Fprintf(&b, " (%s)", t.DisplayName)
	}
	b.WriteString("\n")
	if t.Platform != "" {
		fmt.Fprintf(&b, "Platform: %s\n", t.Platform)
	}
	fmt.Fprintf(&b, "Members: %s\n", strings.Join(t.MemberList(), ", "))
	fmt.Fprintf(&b, "Leads: %s\n", strings.Join(t.LeadList(), ", "))
	return b.String()
}
