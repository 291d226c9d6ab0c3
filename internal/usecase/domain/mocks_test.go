package domain

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ubclaunchpad/rocket2.0/internal/entities"
	githubgw "github.com/ubclaunchpad/rocket2.0/internal/gateway/github"
	slackgw "github.com/ubclaunchpad/rocket2.0/internal/gateway/slack"
	"github.com/ubclaunchpad/rocket2.0/internal/repository"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) StoreUser(ctx context.Context, user entities.User) bool {
	args := m.Called(ctx, user)
	return args.Bool(0)
}

func (m *repoMock) RetrieveUser(ctx context.Context, slackID string) (*entities.User, error) {
	args := m.Called(ctx, slackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) StoreTeam(ctx context.Context, team entities.Team) bool {
	args := m.Called(ctx, team)
	return args.Bool(0)
}

func (m *repoMock) ListTeams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *repoMock) TeamsByName(ctx context.Context, name string) ([]entities.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

type githubMock struct{ mock.Mock }

var _ githubgw.Interface = (*githubMock)(nil)

func (m *githubMock) CreateTeam(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *githubMock) DeleteTeam(ctx context.Context, teamID string) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *githubMock) EditTeam(ctx context.Context, teamID, name string, description *string) error {
	args := m.Called(ctx, teamID, name, description)
	return args.Error(0)
}

func (m *githubMock) AddTeamMember(ctx context.Context, username, teamID string) error {
	args := m.Called(ctx, username, teamID)
	return args.Error(0)
}

func (m *githubMock) RemoveTeamMember(ctx context.Context, username, teamID string) error {
	args := m.Called(ctx, username, teamID)
	return args.Error(0)
}

func (m *githubMock) HasTeamMember(ctx context.Context, username, teamID string) (bool, error) {
	args := m.Called(ctx, username, teamID)
	return args.Bool(0), args.Error(1)
}

func (m *githubMock) ListTeams(ctx context.Context) ([]githubgw.TeamInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]githubgw.TeamInfo), args.Error(1)
}

type slackMock struct{ mock.Mock }

var _ slackgw.Interface = (*slackMock)(nil)

func (m *slackMock) GetChannelUsers(ctx context.Context, channel string) ([]string, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *slackMock) SendDM(ctx context.Context, message, userID string) error {
	args := m.Called(ctx, message, userID)
	return args.Error(0)
}

func (m *slackMock) SendToChannel(ctx context.Context, message, channel string) error {
	args := m.Called(ctx, message, channel)
	return args.Error(0)
}
