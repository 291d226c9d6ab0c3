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

const userHelp = "User command reference:\n\n" +
	" @rocket user view [SLACK_ID]\n" +
	" @rocket user edit [--name NAME] [--email ADDRESS] [--pos POSITION]" +
	" [--github USERNAME] [--major MAJOR] [--bio BIO]\n" +
	"   ADMIN ONLY option: --member SLACK_ID to edit another user's profile\n" +
	" @rocket user help"

// UserCommand handles the user profile subcommands.
type UserCommand struct {
	uc usecase.UserUsecaseInterface
}

// NewUserCommand builds the user command over the orchestrator.
func NewUserCommand(uc usecase.UserUsecaseInterface) *UserCommand {
	return &UserCommand{uc: uc}
}

func (c *UserCommand) Name() string { return "user" }

func (c *UserCommand) Help() string { return userHelp }

// Handle dispatches a user subcommand.
func (c *UserCommand) Handle(ctx context.Context, callerID string, args []string) (string, error) {
	if len(args) == 0 {
		return c.Help(), nil
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "view":
		target := ""
		if len(rest) > 0 {
			target = unescapeUser(rest[0])
		}
		return c.view(ctx, callerID, target)
	case "edit":
		return c.edit(ctx, callerID, rest)
	default:
		return c.Help(), nil
	}
}

func (c *UserCommand) view(ctx context.Context, callerID, targetID string) (string, error) {
	user, err := c.uc.UserView(ctx, callerID, targetID)
	if err != nil {
		return "", err
	}
	return renderUser(user), nil
}

func (c *UserCommand) edit(ctx context.Context, callerID string, args []string) (string, error) {
	fs := pflag.NewFlagSet("user edit", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	pos := fs.String("pos", "", "position")
	github := fs.String("github", "", "github username")
	major := fs.String("major", "", "major")
	bio := fs.String("bio", "", "biography")
	member := fs.String("member", "", "slack id of the user to edit (admin only)")
	if err := fs.Parse(args); err != nil {
		return c.Help(), nil
	}

	var edits entities.UserEdits
	if fs.Changed("name") {
		edits.Name = name
	}
	if fs.Changed("email") {
		edits.Email = email
	}
	if fs.Changed("pos") {
		edits.Position = pos
	}
	if fs.Changed("github") {
		edits.GithubUsername = github
	}
	if fs.Changed("major") {
		edits.Major = major
	}
	if fs.Changed("bio") {
		edits.Biography = bio
	}
	if fs.Changed("member") {
		id := unescapeUser(*member)
		edits.Member = &id
	}

	ok, err := c.uc.UserEdit(ctx, callerID, edits)
	if err != nil {
		return "", err
	}
	if !ok {
		return "Could not save the profile changes.", nil
	}
	return "Profile updated.", nil
}

func renderUser(u *entities.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User <@%s>\n", u.SlackID)
	if u.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", u.Name)
	}
	if u.GithubUsername != "" {
		fmt.Fprintf(&b, "GitHub: %s\n", u.GithubUsername)
	}
	if u.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", u.Email)
	}
	if u.Position != "" {
		fmt.Fprintf(&b, "Position: %s\n", u.Position)
	}
	if u.Major != "" {
		fmt.Fprintf(&b, "Major: %s\n", u.Major)
	}
	if u.Biography != "" {
		fmt.Fprintf(&b, "Bio: %s\n", u.Biography)
	}
	fmt.Fprintf(&b, "Permission: %s\n", u.Permission)
	return b.String()
}
