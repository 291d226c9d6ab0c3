// Package domain contains the team-membership orchestration core. Each
// operation is one ordered sequence of blocking remote calls followed by at
// most one store write; there are no retries and no compensating actions.
package domain

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ubclaunchpad/rocket2.0/internal/gateway/github"
	"github.com/ubclaunchpad/rocket2.0/internal/gateway/slack"
	"github.com/ubclaunchpad/rocket2.0/internal/repository"
)

// Usecase implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	github  github.Interface
	slack   slack.Interface
	timeout time.Duration
}

// New constructs the orchestration core with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	gh github.Interface,
	sl slack.Interface,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		github:  gh,
		slack:   sl,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
