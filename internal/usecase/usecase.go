// Package usecase aggregates the orchestration interfaces consumed by the
// delivery layers.
package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ubclaunchpad/rocket2.0/internal/gateway/github"
	"github.com/ubclaunchpad/rocket2.0/internal/gateway/slack"
	"github.com/ubclaunchpad/rocket2.0/internal/repository"
	"github.com/ubclaunchpad/rocket2.0/internal/usecase/domain"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	TeamUsecaseInterface
	UserUsecaseInterface
}

// New constructs the usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	gh github.Interface,
	sl slack.Interface,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, gh, sl, timeout)
}
