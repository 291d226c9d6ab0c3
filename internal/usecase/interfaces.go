package usecase

import (
	"context"

	"github.com/ubclaunchpad/rocket2.0/internal/entities"
)

// TeamUsecaseInterface abstracts the team lifecycle operations. Mutating
// operations return the record store's boolean result alongside any raised
// error; callers must check both.
type TeamUsecaseInterface interface {
	TeamList(ctx context.Context) ([]entities.Team, error)
	TeamView(ctx context.Context, slug string) (*entities.Team, error)
	TeamCreate(ctx context.Context, callerID, slug string, opts entities.TeamCreateOptions) (bool, error)
	TeamAdd(ctx context.Context, callerID, memberID, slug string) (bool, error)
	TeamRemove(ctx context.Context, callerID, slug, memberID string) (bool, error)
	TeamEdit(ctx context.Context, callerID, slug string, edits entities.TeamEdits) (bool, error)
}

// UserUsecaseInterface abstracts user onboarding and profile operations.
type UserUsecaseInterface interface {
	OnboardUser(ctx context.Context, slackID string) (bool, error)
	UserView(ctx context.Context, callerID, targetID string) (*entities.User, error)
	UserEdit(ctx context.Context, callerID string, edits entities.UserEdits) (bool, error)
}
