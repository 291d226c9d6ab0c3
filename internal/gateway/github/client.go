// Package github wraps the GitHub API as the identity directory backing
// team membership.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bradleyfalzon/ghinstallation/v2"
	gogithub "github.com/google/go-github/v50/github"
	"go.uber.org/zap"

	"github.com/ubclaunchpad/rocket2.0/config"
	"github.com/ubclaunchpad/rocket2.0/internal/entities"
)

// TeamInfo is a directory-side team summary, as returned by ListTeams.
type TeamInfo struct {
	ID   string
	Name string
}

// Interface is the identity directory contract the orchestrator consumes.
// Team ids are opaque strings. Every failure wraps entities.ErrRemoteAPI.
type Interface interface {
	CreateTeam(ctx context.Context, name string) (string, error)
	DeleteTeam(ctx context.Context, teamID string) error
	EditTeam(ctx context.Context, teamID, name string, description *string) error
	AddTeamMember(ctx context.Context, username, teamID string) error
	RemoveTeamMember(ctx context.Context, username, teamID string) error
	HasTeamMember(ctx context.Context, username, teamID string) (bool, error)
	ListTeams(ctx context.Context) ([]TeamInfo, error)
}

// Client implements Interface against the GitHub org API with App
// authentication.
type Client struct {
	log   *zap.SugaredLogger
	api   *gogithub.Client
	org   string
	orgID int64
}

var _ Interface = (*Client)(nil)

// New authenticates as the configured GitHub App installation and resolves
// the managed organization. A failed org lookup is a remote API error.
func New(ctx context.Context, log *zap.SugaredLogger, cfg config.GithubConfig) (*Client, error) {
	tr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, cfg.AppID, cfg.InstallationID, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("%w: load github app key: %v", entities.ErrRemoteAPI, err)
	}

	api := gogithub.NewClient(&http.Client{Transport: tr})
	org, _, err := api.Organizations.Get(ctx, cfg.OrgName)
	if err != nil {
		return nil, fmt.Errorf("%w: organization lookup failed: %v", entities.ErrRemoteAPI, err)
	}

	log.Infow("github client ready", "org", cfg.OrgName)
	return &Client{
		log:   log.Named("gateway.github"),
		api:   api,
		org:   cfg.OrgName,
		orgID: org.GetID(),
	}, nil
}

// CreateTeam creates an org team and returns its id.
func (c *Client) CreateTeam(ctx context.Context, name string) (string, error) {
	team, _, err := c.api.Teams.CreateTeam(ctx, c.org, gogithub.NewTeam{Name: name})
	if err != nil {
		return "", remoteErr("create team", err)
	}
	c.log.Infow("github team created", "name", name, "team_id", team.GetID())
	return strconv.FormatInt(team.GetID(), 10), nil
}

// DeleteTeam removes an org team.
func (c *Client) DeleteTeam(ctx context.Context, teamID string) error {
	id, err := parseTeamID(teamID)
	if err != nil {
		return err
	}
	if _, err := c.api.Teams.DeleteTeamByID(ctx, c.orgID, id); err != nil {
		return remoteErr("delete team", err)
	}
	return nil
}

// EditTeam renames a team and optionally replaces its description.
func (c *Client) EditTeam(ctx context.Context, teamID, name string, description *string) error {
	id, err := parseTeamID(teamID)
	if err != nil {
		return err
	}
	team := gogithub.NewTeam{Name: name, Description: description}
	if _, _, err := c.api.Teams.EditTeamByID(ctx, c.orgID, id, team, false); err != nil {
		return remoteErr("edit team", err)
	}
	return nil
}

// AddTeamMember adds the username to the team's membership.
func (c *Client) AddTeamMember(ctx context.Context, username, teamID string) error {
	id, err := parseTeamID(teamID)
	if err != nil {
		return err
	}
	if _, _, err := c.api.Teams.AddTeamMembershipByID(ctx, c.orgID, id, username, nil); err != nil {
		return remoteErr("add team member", err)
	}
	c.log.Infow("github team member added", "username", username, "team_id", teamID)
	return nil
}

// RemoveTeamMember drops the username from the team's membership.
func (c *Client) RemoveTeamMember(ctx context.Context, username, teamID string) error {
	id, err := parseTeamID(teamID)
	if err != nil {
		return err
	}
	if _, err := c.api.Teams.RemoveTeamMembershipByID(ctx, c.orgID, id, username); err != nil {
		return remoteErr("remove team member", err)
	}
	c.log.Infow("github team member removed", "username", username, "team_id", teamID)
	return nil
}

// HasTeamMember reports whether the username holds a membership on the team.
// A 404 from the membership endpoint means "not a member", not a failure.
func (c *Client) HasTeamMember(ctx context.Context, username, teamID string) (bool, error) {
	id, err := parseTeamID(teamID)
	if err != nil {
		return false, err
	}
	_, resp, err := c.api.Teams.GetTeamMembershipByID(ctx, c.orgID, id, username)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, remoteErr("check team membership", err)
	}
	return true, nil
}

// ListTeams returns all teams of the managed organization.
func (c *Client) ListTeams(ctx context.Context) ([]TeamInfo, error) {
	opts := &gogithub.ListOptions{PerPage: 100}
	teams := make([]TeamInfo, 0)
	for {
		page, resp, err := c.api.Teams.ListTeams(ctx, c.org, opts)
		if err != nil {
			return nil, remoteErr("list teams", err)
		}
		for _, t := range page {
			teams = append(teams, TeamInfo{
				ID:   strconv.FormatInt(t.GetID(), 10),
				Name: t.GetSlug(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return teams, nil
}

func parseTeamID(teamID string) (int64, error) {
	id, err := strconv.ParseInt(teamID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed github team id %q", entities.ErrInvalidArgument, teamID)
	}
	return id, nil
}

func remoteErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", entities.ErrRemoteAPI, op, err)
}
