package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ubclaunchpad/rocket2.0/internal/entities"
)

const (
	upsertTeamQuery = `
INSERT INTO teams(github_team_id, name, display_name, platform)
VALUES ($1, $2, $3, $4)
ON CONFLICT (github_team_id) DO UPDATE SET
    name = EXCLUDED.name,
    display_name = EXCLUDED.display_name,
    platform = EXCLUDED.platform
`
	deleteTeamMembersQuery = `DELETE FROM team_members WHERE team_id=$1`
	deleteTeamLeadsQuery   = `DELETE FROM team_leads WHERE team_id=$1`
	insertTeamMemberQuery  = `INSERT INTO team_members(team_id, github_id) VALUES ($1, $2)`
	insertTeamLeadQuery    = `INSERT INTO team_leads(team_id, github_id) VALUES ($1, $2)`

	selectTeamsQuery       = `SELECT github_team_id, name, display_name, platform FROM teams`
	selectTeamsByNameQuery = `SELECT github_team_id, name, display_name, platform FROM teams WHERE name=$1`
	selectTeamMembersQuery = `SELECT github_id FROM team_members WHERE team_id=$1`
	selectTeamLeadsQuery   = `SELECT github_id FROM team_leads WHERE team_id=$1`
)

// StoreTeam upserts the team row and rewrites its membership rows in one
// transaction. Failure is logged and surfaced as false.
func (p *Postgres) StoreTeam(ctx context.Context, team entities.Team) bool {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		p.log.Errorw("failed to store team", "error", err, "team", team.Name)
		return false
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, upsertTeamQuery, team.GithubTeamID, team.Name, team.DisplayName, team.Platform); err != nil {
		p.log.Errorw("failed to upsert team", "error", err, "team", team.Name)
		return false
	}

	if _, err := tx.Exec(ctx, deleteTeamMembersQuery, team.GithubTeamID); err != nil {
		p.log.Errorw("failed to clear team members", "error", err, "team", team.Name)
		return false
	}
	for _, id := range team.MemberList() {
		if _, err := tx.Exec(ctx, insertTeamMemberQuery, team.GithubTeamID, id); err != nil {
			p.log.Errorw("failed to insert team member", "error", err, "team", team.Name, "github_id", id)
			return false
		}
	}

	if _, err := tx.Exec(ctx, deleteTeamLeadsQuery, team.GithubTeamID); err != nil {
		p.log.Errorw("failed to clear team leads", "error", err, "team", team.Name)
		return false
	}
	for _, id := range team.LeadList() {
		if _, err := tx.Exec(ctx, insertTeamLeadQuery, team.GithubTeamID, id); err != nil {
			p.log.Errorw("failed to insert team lead", "error", err, "team", team.Name, "github_id", id)
			return false
		}
	}

	if err := tx.Commit(ctx); err != nil {
		p.log.Errorw("failed to commit team", "error", err, "team", team.Name)
		return false
	}

	p.log.Infow("team stored", "team", team.Name, "members", len(team.Members), "leads", len(team.Leads))
	return true
}

// ListTeams returns every stored team with its membership.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	return p.selectTeams(ctx, selectTeamsQuery)
}

// TeamsByName returns all teams with the given name slug. An empty result is
// not an error.
func (p *Postgres) TeamsByName(ctx context.Context, name string) ([]entities.Team, error) {
	return p.selectTeams(ctx, selectTeamsByNameQuery, name)
}

func (p *Postgres) selectTeams(ctx context.Context, query string, args ...any) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.GithubTeamID, &t.Name, &t.DisplayName, &t.Platform); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	for i := range teams {
		if err := p.loadMembership(ctx, &teams[i]); err != nil {
			return nil, err
		}
	}

	return teams, nil
}

func (p *Postgres) loadMembership(ctx context.Context, team *entities.Team) error {
	members, err := p.selectGithubIDs(ctx, selectTeamMembersQuery, team.GithubTeamID)
	if err != nil {
		return fmt.Errorf("load team members: %w", err)
	}
	leads, err := p.selectGithubIDs(ctx, selectTeamLeadsQuery, team.GithubTeamID)
	if err != nil {
		return fmt.Errorf("load team leads: %w", err)
	}

	team.Members = make(map[string]struct{}, len(members))
	for _, id := range members {
		team.AddMember(id)
	}
	team.Leads = make(map[string]struct{}, len(leads))
	for _, id := range leads {
		team.AddLead(id)
	}
	return nil
}

func (p *Postgres) selectGithubIDs(ctx context.Context, query, teamID string) ([]string, error) {
	rows, err := p.db.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
