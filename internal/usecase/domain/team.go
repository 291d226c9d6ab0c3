package domain

import (
	"context"
	"fmt"

	"github.com/ubclaunchpad/rocket2.0/internal/entities"
)

// TeamList returns every team in the store. No permission check; store-native
// order, which callers must not rely on.
func (u *Usecase) TeamList(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTeams(ctx)
}

// TeamView returns the single team with the given name slug.
func (u *Usecase) TeamView(ctx context.Context, slug string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if slug == "" {
		return nil, fmt.Errorf("%w: team name is required", entities.ErrInvalidArgument)
	}
	return u.teamByName(ctx, slug)
}

// TeamCreate creates a GitHub team, populates its membership, and persists
// the team record as the final step. A store failure after the GitHub side
// effects is reported as false without compensation; the resulting
// divergence is accepted.
//
// The member set comes from the given channel when one is supplied, channel
// membership being authoritative: the caller is then recorded only as lead.
// Unresolvable channel members abort the operation.
func (u *Usecase) TeamCreate(ctx context.Context, callerID, slug string, opts entities.TeamCreateOptions) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if slug == "" {
		return false, fmt.Errorf("%w: team name is required", entities.ErrInvalidArgument)
	}

	caller, err := u.resolveUser(ctx, callerID)
	if err != nil {
		return false, err
	}
	if !caller.Permission.AtLeast(entities.PermissionTeamLead) {
		u.log.Errorw("team create denied", "caller", callerID, "permission", caller.Permission)
		return false, fmt.Errorf("%w: creating a team requires team_lead", entities.ErrPermissionDenied)
	}

	teamID, err := u.github.CreateTeam(ctx, slug)
	if err != nil {
		return false, err
	}

	team := entities.NewTeam(teamID, slug, opts.DisplayName)
	team.Platform = opts.Platform

	if opts.Channel != "" {
		channelUsers, err := u.slack.GetChannelUsers(ctx, opts.Channel)
		if err != nil {
			return false, err
		}
		for _, slackID := range channelUsers {
			member, err := u.resolveUser(ctx, slackID)
			if err != nil {
				// Fail closed: a team must not reference unknown users.
				return false, err
			}
			if err := u.github.AddTeamMember(ctx, member.GithubUsername, teamID); err != nil {
				return false, err
			}
			team.AddMember(member.GithubID)
		}
	} else {
		if err := u.github.AddTeamMember(ctx, caller.GithubUsername, teamID); err != nil {
			return false, err
		}
		team.AddMember(caller.GithubID)
	}

	if opts.LeadID != "" {
		lead, err := u.resolveUser(ctx, opts.LeadID)
		if err != nil {
			return false, err
		}
		team.AddLead(lead.GithubID)
		inTeam, err := u.github.HasTeamMember(ctx, lead.GithubUsername, teamID)
		if err != nil {
			return false, err
		}
		if !inTeam {
			if err := u.github.AddTeamMember(ctx, lead.GithubUsername, teamID); err != nil {
				return false, err
			}
		}
	} else {
		team.AddLead(caller.GithubID)
	}

	stored := u.repo.StoreTeam(ctx, *team)
	u.log.Infow("team created", "team", slug, "github_team_id", teamID, "stored", stored,
		"members", len(team.Members), "leads", len(team.Leads))
	return stored, nil
}

// TeamAdd adds a member to the team, GitHub first, store last. Adding an
// already-recorded member is a no-op at the set level, not an error.
func (u *Usecase) TeamAdd(ctx context.Context, callerID, memberID, slug string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	caller, err := u.resolveUser(ctx, callerID)
	if err != nil {
		return false, err
	}
	team, err := u.teamByName(ctx, slug)
	if err != nil {
		return false, err
	}
	if !canManageTeam(caller, team) {
		u.log.Errorw("team add denied", "caller", callerID, "team", slug)
		return false, fmt.Errorf("%w: adding to team %q requires admin or team lead", entities.ErrPermissionDenied, slug)
	}

	member, err := u.resolveUser(ctx, memberID)
	if err != nil {
		return false, err
	}

	if err := u.github.AddTeamMember(ctx, member.GithubUsername, team.GithubTeamID); err != nil {
		return false, err
	}

	team.AddMember(member.GithubID)
	stored := u.repo.StoreTeam(ctx, *team)
	u.log.Infow("team member added", "team", slug, "member", memberID, "stored", stored)
	return stored, nil
}

// TeamRemove removes a member from the team. The GitHub membership check
// runs first: a member the directory does not know about is a detected
// inconsistency and aborts as a remote API error rather than silently
// succeeding. A missing member resolves to ErrUserNotFound.
func (u *Usecase) TeamRemove(ctx context.Context, callerID, slug, memberID string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	caller, err := u.resolveUser(ctx, callerID)
	if err != nil {
		return false, err
	}
	team, err := u.teamByName(ctx, slug)
	if err != nil {
		return false, err
	}
	if !canManageTeam(caller, team) {
		u.log.Errorw("team remove denied", "caller", callerID, "team", slug)
		return false, fmt.Errorf("%w: removing from team %q requires admin or team lead", entities.ErrPermissionDenied, slug)
	}

	member, err := u.resolveUser(ctx, memberID)
	if err != nil {
		return false, err
	}

	inTeam, err := u.github.HasTeamMember(ctx, member.GithubUsername, team.GithubTeamID)
	if err != nil {
		return false, err
	}
	if !inTeam {
		u.log.Errorw("membership divergence detected", "team", slug, "member", memberID)
		return false, fmt.Errorf("%w: %s is not a member of github team %s",
			entities.ErrRemoteAPI, member.GithubUsername, team.GithubTeamID)
	}

	if err := u.github.RemoveTeamMember(ctx, member.GithubUsername, team.GithubTeamID); err != nil {
		return false, err
	}

	team.RemoveMember(member.GithubID)
	stored := u.repo.StoreTeam(ctx, *team)
	u.log.Infow("team member removed", "team", slug, "member", memberID, "stored", stored)
	return stored, nil
}

// TeamEdit applies the supplied attribute edits and persists. Unsupplied
// fields are untouched; no directory calls occur for attribute-only edits.
func (u *Usecase) TeamEdit(ctx context.Context, callerID, slug string, edits entities.TeamEdits) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	caller, err := u.resolveUser(ctx, callerID)
	if err != nil {
		return false, err
	}
	team, err := u.teamByName(ctx, slug)
	if err != nil {
		return false, err
	}
	if !canManageTeam(caller, team) {
		u.log.Errorw("team edit denied", "caller", callerID, "team", slug)
		return false, fmt.Errorf("%w: editing team %q requires admin or team lead", entities.ErrPermissionDenied, slug)
	}

	if edits.DisplayName != nil {
		team.DisplayName = *edits.DisplayName
	}
	if edits.Platform != nil {
		team.Platform = *edits.Platform
	}

	stored := u.repo.StoreTeam(ctx, *team)
	u.log.Infow("team edited", "team", slug, "stored", stored)
	return stored, nil
}
