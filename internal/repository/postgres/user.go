package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ubclaunchpad/rocket2.0/internal/entities"
)

const (
	upsertUserQuery = `
INSERT INTO users(slack_id, github_id, github_username, name, email, position, major, biography, image_url, permission)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (slack_id) DO UPDATE SET
    github_id = EXCLUDED.github_id,
    github_username = EXCLUDED.github_username,
    name = EXCLUDED.name,
    email = EXCLUDED.email,
    position = EXCLUDED.position,
    major = EXCLUDED.major,
    biography = EXCLUDED.biography,
    image_url = EXCLUDED.image_url,
    permission = EXCLUDED.permission
`
	selectUserQuery = `
SELECT slack_id, github_id, github_username, name, email, position, major, biography, image_url, permission
FROM users WHERE slack_id=$1
`
)

// StoreUser upserts a user row. Failure is logged and surfaced as false.
func (p *Postgres) StoreUser(ctx context.Context, user entities.User) bool {
	_, err := p.db.Exec(ctx, upsertUserQuery,
		user.SlackID, user.GithubID, user.GithubUsername, user.Name, user.Email,
		user.Position, user.Major, user.Biography, user.ImageURL, user.Permission.String(),
	)
	if err != nil {
		p.log.Errorw("failed to store user", "error", err, "slack_id", user.SlackID)
		return false
	}

	p.log.Infow("user stored", "slack_id", user.SlackID)
	return true
}

// RetrieveUser fetches a user by slack id.
func (p *Postgres) RetrieveUser(ctx context.Context, slackID string) (*entities.User, error) {
	var u entities.User
	var permission string
	err := p.db.QueryRow(ctx, selectUserQuery, slackID).Scan(
		&u.SlackID, &u.GithubID, &u.GithubUsername, &u.Name, &u.Email,
		&u.Position, &u.Major, &u.Biography, &u.ImageURL, &permission,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: slack id %q", entities.ErrUserNotFound, slackID)
		}
		return nil, fmt.Errorf("retrieve user: %w", err)
	}

	u.Permission, err = entities.ParsePermission(permission)
	if err != nil {
		return nil, fmt.Errorf("retrieve user: %w", err)
	}

	return &u, nil
}
