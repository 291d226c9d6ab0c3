// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/ubclaunchpad/rocket2.0/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user persistence. StoreUser reports success as a
// plain bool; the underlying error is logged by the adapter, never raised.
type UserInterface interface {
	StoreUser(ctx context.Context, user entities.User) bool
	RetrieveUser(ctx context.Context, slackID string) (*entities.User, error)
}

// TeamInterface exposes team persistence. TeamsByName returns an empty slice
// when nothing matches; the 0/1/many decision belongs to the caller.
type TeamInterface interface {
	StoreTeam(ctx context.Context, team entities.Team) bool
	ListTeams(ctx context.Context) ([]entities.Team, error)
	TeamsByName(ctx context.Context, name string) ([]entities.Team, error)
}
