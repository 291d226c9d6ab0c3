package domain

import (
	"context"
	"fmt"

	"github.com/ubclaunchpad/rocket2.0/internal/entities"
)

// resolveUser fetches a user by slack id, surfacing ErrUserNotFound when the
// id is unknown.
func (u *Usecase) resolveUser(ctx context.Context, slackID string) (*entities.User, error) {
	user, err := u.repo.RetrieveUser(ctx, slackID)
	if err != nil {
		u.log.Errorw("failed to resolve user", "error", err, "slack_id", slackID)
		return nil, err
	}
	return user, nil
}

// teamByName queries the store by team name slug and applies the 0/1/many
// integrity check. Duplicate slugs are tolerated in the store but refused
// here with ErrTeamAmbiguous.
func (u *Usecase) teamByName(ctx context.Context, slug string) (*entities.Team, error) {
	teams, err := u.repo.TeamsByName(ctx, slug)
	if err != nil {
		return nil, err
	}

	team, err := entities.UniqueTeam(teams)
	if err != nil {
		u.log.Errorw("team lookup failed", "error", err, "team", slug, "matches", len(teams))
		return nil, fmt.Errorf("%w: team name %q", err, slug)
	}
	return team, nil
}

// canManageTeam reports whether the caller holds authority over the team:
// global admin, or a recorded lead of this specific team.
func canManageTeam(caller *entities.User, team *entities.Team) bool {
	return caller.Permission.AtLeast(entities.PermissionAdmin) || team.HasLead(caller.GithubID)
}
