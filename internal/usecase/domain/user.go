package domain

import (
	"context"
	"fmt"

	"github.com/ubclaunchpad/rocket2.0/internal/entities"
)

const welcomeMessage = "Welcome to UBC Launch Pad! Please type `/rocket user edit " +
	"--github $GITHUB_USERNAME` to add yourself to the GitHub organization."

// OnboardUser records a user on first contact with the workspace and sends
// the welcome DM. A failed DM is logged, not surfaced; the store result is.
func (u *Usecase) OnboardUser(ctx context.Context, slackID string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if slackID == "" {
		return false, fmt.Errorf("%w: slack id is required", entities.ErrInvalidArgument)
	}

	user := entities.NewUser(slackID)
	stored := u.repo.StoreUser(ctx, *user)
	if !stored {
		return false, nil
	}

	if err := u.slack.SendDM(ctx, welcomeMessage, slackID); err != nil {
		u.log.Errorw("user stored but not notified", "error", err, "slack_id", slackID)
	} else {
		u.log.Infow("user onboarded", "slack_id", slackID)
	}
	return true, nil
}

// UserView returns the target user's profile, or the caller's own when
// targetID is empty.
func (u *Usecase) UserView(ctx context.Context, callerID, targetID string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if targetID == "" {
		targetID = callerID
	}
	return u.resolveUser(ctx, targetID)
}

// UserEdit applies the supplied profile edits to the caller, or to another
// member when edits.Member names one; editing someone else requires admin.
func (u *Usecase) UserEdit(ctx context.Context, callerID string, edits entities.UserEdits) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	caller, err := u.resolveUser(ctx, callerID)
	if err != nil {
		return false, err
	}

	target := caller
	if edits.Member != nil {
		if !caller.Permission.AtLeast(entities.PermissionAdmin) {
			u.log.Errorw("user edit denied", "caller", callerID, "target", *edits.Member)
			return false, fmt.Errorf("%w: editing another user requires admin", entities.ErrPermissionDenied)
		}
		target, err = u.resolveUser(ctx, *edits.Member)
		if err != nil {
			return false, err
		}
	}

	if edits.Name != nil {
		target.Name = *edits.Name
	}
	if edits.Email != nil {
		target.Email = *edits.Email
	}
	if edits.Position != nil {
		target.Position = *edits.Position
	}
	if edits.GithubUsername != nil {
		target.GithubUsername = *edits.GithubUsername
	}
	if edits.Major != nil {
		target.Major = *edits.Major
	}
	if edits.Biography != nil {
		target.Biography = *edits.Biography
	}

	stored := u.repo.StoreUser(ctx, *target)
	u.log.Infow("user edited", "slack_id", target.SlackID, "stored", stored)
	return stored, nil
}
