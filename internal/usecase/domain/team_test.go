package domain

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ubclaunchpad/rocket2.0/internal/entities"
)

type fixture struct {
	repo *repoMock
	gh   *githubMock
	sl   *slackMock
	uc   *Usecase

	regular entities.User
	lead    entities.User

	team1    entities.Team
	team2    entities.Team
	team3    entities.Team
	team3dup entities.Team
}

func newFixture() *fixture {
	f := &fixture{repo: &repoMock{}, gh: &githubMock{}, sl: &slackMock{}}
	f.uc = New(zap.NewNop().Sugar(), context.Background(), f.repo, f.gh, f.sl, time.Second)

	f.regular = entities.User{
		SlackID:        "regular",
		Permission:     entities.PermissionMember,
		GithubID:       "reg_gh_id",
		GithubUsername: "reg_username",
	}
	f.lead = entities.User{
		SlackID:        "lead",
		Permission:     entities.PermissionTeamLead,
		GithubID:       "lead_gh_id",
		GithubUsername: "lead_username",
	}

	f.team1 = *entities.NewTeam("1", "gh1", "name1")
	f.team2 = *entities.NewTeam("2", "gh2", "name2")
	f.team3 = *entities.NewTeam("3", "gh3", "name3")
	f.team3dup = *entities.NewTeam("4", "gh3", "name4")
	return f
}

// expectUsers resolves the two fixture users and fails every other id.
func (f *fixture) expectUsers() {
	f.repo.On("RetrieveUser", mock.Anything, "regular").Return(&f.regular, nil)
	f.repo.On("RetrieveUser", mock.Anything, "lead").Return(&f.lead, nil)
	f.repo.On("RetrieveUser", mock.Anything, mock.Anything).Return(nil, entities.ErrUserNotFound)
}

// expectTeams wires the slug queries, including the duplicate gh3 pair.
func (f *fixture) expectTeams() {
	f.repo.On("TeamsByName", mock.Anything, "gh1").Return([]entities.Team{f.team1}, nil)
	f.repo.On("TeamsByName", mock.Anything, "gh2").Return([]entities.Team{f.team2}, nil)
	f.repo.On("TeamsByName", mock.Anything, "gh3").Return([]entities.Team{f.team3, f.team3dup}, nil)
	f.repo.On("TeamsByName", mock.Anything, mock.Anything).Return([]entities.Team{}, nil)
}

func remoteErr() error {
	return fmt.Errorf("%w: boom", entities.ErrRemoteAPI)
}

func TestTeamListReturnsAllTeams(t *testing.T) {
	f := newFixture()
	all := []entities.Team{f.team1, f.team2, f.team3, f.team3dup}
	f.repo.On("ListTeams", mock.Anything).Return(all, nil)

	teams, err := f.uc.TeamList(context.Background())
	require.NoError(t, err)
	require.Equal(t, all, teams)
}

func TestTeamViewMissingTeam(t *testing.T) {
	f := newFixture()
	f.expectTeams()

	_, err := f.uc.TeamView(context.Background(), "no_team")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
}

func TestTeamViewDuplicateName(t *testing.T) {
	f := newFixture()
	f.expectTeams()

	_, err := f.uc.TeamView(context.Background(), "gh3")
	require.ErrorIs(t, err, entities.ErrTeamAmbiguous)
}

func TestTeamViewSingleTeam(t *testing.T) {
	f := newFixture()
	f.expectTeams()

	team, err := f.uc.TeamView(context.Background(), "gh1")
	require.NoError(t, err)
	require.Equal(t, "gh1", team.Name)
	require.Equal(t, "1", team.GithubTeamID)
}

func TestTeamCreateMissingCaller(t *testing.T) {
	f := newFixture()
	f.expectUsers()

	_, err := f.uc.TeamCreate(context.Background(), "no_user", "team_name", entities.TeamCreateOptions{})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestTeamCreateNonLeadCaller(t *testing.T) {
	f := newFixture()
	f.expectUsers()

	_, err := f.uc.TeamCreate(context.Background(), "regular", "team_name", entities.TeamCreateOptions{})
	require.ErrorIs(t, err, entities.ErrPermissionDenied)
	f.gh.AssertNumberOfCalls(t, "CreateTeam", 0)
	f.gh.AssertNumberOfCalls(t, "AddTeamMember", 0)
}

func TestTeamCreateRemoteCreateError(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("", remoteErr())

	_, err := f.uc.TeamCreate(context.Background(), "lead", "team_name", entities.TeamCreateOptions{})
	require.ErrorIs(t, err, entities.ErrRemoteAPI)
	f.repo.AssertNumberOfCalls(t, "StoreTeam", 0)
}

func TestTeamCreateAddMemberError(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.gh.On("AddTeamMember", mock.Anything, "lead_username", "team_gh_id").Return(remoteErr())

	_, err := f.uc.TeamCreate(context.Background(), "lead", "team_name", entities.TeamCreateOptions{})
	require.ErrorIs(t, err, entities.ErrRemoteAPI)
	f.repo.AssertNumberOfCalls(t, "StoreTeam", 0)
}

func TestTeamCreateSuccess(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.gh.On("AddTeamMember", mock.Anything, "lead_username", "team_gh_id").Return(nil)
	f.repo.On("StoreTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return team.GithubTeamID == "team_gh_id" &&
			team.Name == "team_name" &&
			team.DisplayName == "" &&
			len(team.Members) == 1 && team.HasMember("lead_gh_id") &&
			len(team.Leads) == 1 && team.HasLead("lead_gh_id")
	})).Return(true)

	created, err := f.uc.TeamCreate(context.Background(), "lead", "team_name", entities.TeamCreateOptions{})
	require.NoError(t, err)
	require.True(t, created)
	f.gh.AssertNumberOfCalls(t, "AddTeamMember", 1)
	f.repo.AssertExpectations(t)
}

func TestTeamCreateWithDisplayName(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.gh.On("AddTeamMember", mock.Anything, "lead_username", "team_gh_id").Return(nil)
	f.repo.On("StoreTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return team.DisplayName == "display_name"
	})).Return(true)

	created, err := f.uc.TeamCreate(context.Background(), "lead", "team_name",
		entities.TeamCreateOptions{DisplayName: "display_name"})
	require.NoError(t, err)
	require.True(t, created)
	f.repo.AssertExpectations(t)
}

func TestTeamCreateWithPlatform(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.gh.On("AddTeamMember", mock.Anything, "lead_username", "team_gh_id").Return(nil)
	f.repo.On("StoreTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return team.Platform == "platform"
	})).Return(true)

	created, err := f.uc.TeamCreate(context.Background(), "lead", "team_name",
		entities.TeamCreateOptions{Platform: "platform"})
	require.NoError(t, err)
	require.True(t, created)
	f.repo.AssertExpectations(t)
}

func TestTeamCreateChannelUsersError(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.sl.On("GetChannelUsers", mock.Anything, "channel").Return(nil, remoteErr())

	_, err := f.uc.TeamCreate(context.Background(), "lead", "team_name",
		entities.TeamCreateOptions{Channel: "channel"})
	require.ErrorIs(t, err, entities.ErrRemoteAPI)
	f.repo.AssertNumberOfCalls(t, "StoreTeam", 0)
}

func TestTeamCreateUnresolvedChannelMember(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.sl.On("GetChannelUsers", mock.Anything, "channel").Return([]string{"missing"}, nil)

	_, err := f.uc.TeamCreate(context.Background(), "lead", "team_name",
		entities.TeamCreateOptions{Channel: "channel"})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	f.gh.AssertNumberOfCalls(t, "AddTeamMember", 0)
	f.repo.AssertNumberOfCalls(t, "StoreTeam", 0)
}

func TestTeamCreateChannelMemberAddError(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.sl.On("GetChannelUsers", mock.Anything, "channel").Return([]string{"regular"}, nil)
	f.gh.On("AddTeamMember", mock.Anything, "reg_username", "team_gh_id").Return(remoteErr())

	_, err := f.uc.TeamCreate(context.Background(), "lead", "team_name",
		entities.TeamCreateOptions{Channel: "channel"})
	require.ErrorIs(t, err, entities.ErrRemoteAPI)
	f.repo.AssertNumberOfCalls(t, "StoreTeam", 0)
}

func TestTeamCreateWithChannel(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.sl.On("GetChannelUsers", mock.Anything, "channel").Return([]string{"regular"}, nil)
	f.gh.On("AddTeamMember", mock.Anything, "reg_username", "team_gh_id").Return(nil)
	// Channel membership is authoritative: the caller is recorded as lead
	// only, not as member.
	f.repo.On("StoreTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return len(team.Members) == 1 && team.HasMember("reg_gh_id") &&
			len(team.Leads) == 1 && team.HasLead("lead_gh_id")
	})).Return(true)

	created, err := f.uc.TeamCreate(context.Background(), "lead", "team_name",
		entities.TeamCreateOptions{Channel: "channel"})
	require.NoError(t, err)
	require.True(t, created)
	f.repo.AssertExpectations(t)
}

func TestTeamCreateMissingLead(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.gh.On("AddTeamMember", mock.Anything, "lead_username", "team_gh_id").Return(nil)

	_, err := f.uc.TeamCreate(context.Background(), "lead", "team_name",
		entities.TeamCreateOptions{LeadID: "missing"})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	f.repo.AssertNumberOfCalls(t, "StoreTeam", 0)
}

func TestTeamCreateLeadCheckError(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.gh.On("AddTeamMember", mock.Anything, "lead_username", "team_gh_id").Return(nil)
	f.gh.On("HasTeamMember", mock.Anything, "reg_username", "team_gh_id").Return(false, remoteErr())

	_, err := f.uc.TeamCreate(context.Background(), "lead", "team_name",
		entities.TeamCreateOptions{LeadID: "regular"})
	require.ErrorIs(t, err, entities.ErrRemoteAPI)
	f.repo.AssertNumberOfCalls(t, "StoreTeam", 0)
}

func TestTeamCreateLeadNotInRemoteTeam(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.gh.On("AddTeamMember", mock.Anything, "lead_username", "team_gh_id").Return(nil)
	f.gh.On("HasTeamMember", mock.Anything, "reg_username", "team_gh_id").Return(false, nil)
	f.gh.On("AddTeamMember", mock.Anything, "reg_username", "team_gh_id").Return(nil)
	f.repo.On("StoreTeam", mock.Anything, mock.Anything).Return(true)

	created, err := f.uc.TeamCreate(context.Background(), "lead", "team_name",
		entities.TeamCreateOptions{LeadID: "regular"})
	require.NoError(t, err)
	require.True(t, created)
	f.gh.AssertCalled(t, "AddTeamMember", mock.Anything, "reg_username", "team_gh_id")
}

func TestTeamCreateLeadAlreadyInRemoteTeam(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.gh.On("AddTeamMember", mock.Anything, "lead_username", "team_gh_id").Return(nil)
	f.gh.On("HasTeamMember", mock.Anything, "reg_username", "team_gh_id").Return(true, nil)
	f.repo.On("StoreTeam", mock.Anything, mock.Anything).Return(true)

	created, err := f.uc.TeamCreate(context.Background(), "lead", "team_name",
		entities.TeamCreateOptions{LeadID: "regular"})
	require.NoError(t, err)
	require.True(t, created)
	f.gh.AssertNumberOfCalls(t, "AddTeamMember", 1)
}

func TestTeamCreateWithLead(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.gh.On("AddTeamMember", mock.Anything, mock.Anything, "team_gh_id").Return(nil)
	f.gh.On("HasTeamMember", mock.Anything, "reg_username", "team_gh_id").Return(true, nil)
	// The named lead is recorded as lead but not forced into the member set.
	f.repo.On("StoreTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return len(team.Members) == 1 && team.HasMember("lead_gh_id") &&
			len(team.Leads) == 1 && team.HasLead("reg_gh_id")
	})).Return(true)

	created, err := f.uc.TeamCreate(context.Background(), "lead", "team_name",
		entities.TeamCreateOptions{LeadID: "regular"})
	require.NoError(t, err)
	require.True(t, created)
	f.repo.AssertExpectations(t)
}

func TestTeamCreateStoreFailure(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.gh.On("CreateTeam", mock.Anything, "team_name").Return("team_gh_id", nil)
	f.gh.On("AddTeamMember", mock.Anything, "lead_username", "team_gh_id").Return(nil)
	f.repo.On("StoreTeam", mock.Anything, mock.Anything).Return(false)

	// The GitHub team already exists remotely at this point; the failed
	// store is reported as false, not as an error.
	created, err := f.uc.TeamCreate(context.Background(), "lead", "team_name", entities.TeamCreateOptions{})
	require.NoError(t, err)
	require.False(t, created)
	f.gh.AssertNumberOfCalls(t, "AddTeamMember", 1)
	f.repo.AssertNumberOfCalls(t, "StoreTeam", 1)
}

func TestTeamAddMissingCaller(t *testing.T) {
	f := newFixture()
	f.expectUsers()

	_, err := f.uc.TeamAdd(context.Background(), "no_user", "no_user_2", "team_name")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestTeamAddMissingTeam(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.expectTeams()

	_, err := f.uc.TeamAdd(context.Background(), "lead", "regular", "missing_team")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
	f.gh.AssertNumberOfCalls(t, "AddTeamMember", 0)
}

func TestTeamAddDuplicateTeamName(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.expectTeams()

	_, err := f.uc.TeamAdd(context.Background(), "lead", "regular", "gh3")
	require.ErrorIs(t, err, entities.ErrTeamAmbiguous)
}

func TestTeamAddPermissionDenied(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.expectTeams()

	// A global team_lead who is not a lead of this team has no authority
	// over it either.
	for _, caller := range []string{"regular", "lead"} {
		_, err := f.uc.TeamAdd(context.Background(), caller, "regular", "gh1")
		require.ErrorIs(t, err, entities.ErrPermissionDenied)
	}
	f.gh.AssertNumberOfCalls(t, "AddTeamMember", 0)
}

func TestTeamAddMissingNewMember(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.expectUsers()
	f.expectTeams()

	_, err := f.uc.TeamAdd(context.Background(), "lead", "no_user", "gh1")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestTeamAddRemoteError(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.expectUsers()
	f.expectTeams()
	f.gh.On("AddTeamMember", mock.Anything, "reg_username", "1").Return(remoteErr())

	_, err := f.uc.TeamAdd(context.Background(), "lead", "regular", "gh1")
	require.ErrorIs(t, err, entities.ErrRemoteAPI)
	f.repo.AssertNumberOfCalls(t, "StoreTeam", 0)
}

func TestTeamAddSuccess(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.expectUsers()
	f.expectTeams()
	f.gh.On("AddTeamMember", mock.Anything, "reg_username", "1").Return(nil)
	f.repo.On("StoreTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return team.GithubTeamID == "1" && team.HasMember("reg_gh_id")
	})).Return(true)

	added, err := f.uc.TeamAdd(context.Background(), "lead", "regular", "gh1")
	require.NoError(t, err)
	require.True(t, added)
	f.gh.AssertNumberOfCalls(t, "AddTeamMember", 1)
	f.repo.AssertExpectations(t)
}

func TestTeamAddExistingMemberIsIdempotent(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.team1.AddMember("reg_gh_id")
	f.expectUsers()
	f.expectTeams()
	f.gh.On("AddTeamMember", mock.Anything, "reg_username", "1").Return(nil)
	f.repo.On("StoreTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return len(team.Members) == 1 && team.HasMember("reg_gh_id")
	})).Return(true)

	added, err := f.uc.TeamAdd(context.Background(), "lead", "regular", "gh1")
	require.NoError(t, err)
	require.True(t, added)
	f.repo.AssertExpectations(t)
}

func TestTeamAddStoreFailure(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.expectUsers()
	f.expectTeams()
	f.gh.On("AddTeamMember", mock.Anything, "reg_username", "1").Return(nil)
	f.repo.On("StoreTeam", mock.Anything, mock.Anything).Return(false)

	added, err := f.uc.TeamAdd(context.Background(), "lead", "regular", "gh1")
	require.NoError(t, err)
	require.False(t, added)
}

func TestTeamRemoveMissingCaller(t *testing.T) {
	f := newFixture()
	f.expectUsers()

	_, err := f.uc.TeamRemove(context.Background(), "no_user", "gh1", "regular")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestTeamRemoveMissingTeam(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.expectTeams()

	_, err := f.uc.TeamRemove(context.Background(), "lead", "no_team", "regular")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
}

func TestTeamRemoveDuplicateTeamName(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.expectTeams()

	_, err := f.uc.TeamRemove(context.Background(), "lead", "gh3", "regular")
	require.ErrorIs(t, err, entities.ErrTeamAmbiguous)
}

func TestTeamRemovePermissionDenied(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.expectTeams()

	_, err := f.uc.TeamRemove(context.Background(), "regular", "gh1", "lead")
	require.ErrorIs(t, err, entities.ErrPermissionDenied)
}

func TestTeamRemoveMissingMember(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.expectUsers()
	f.expectTeams()

	_, err := f.uc.TeamRemove(context.Background(), "lead", "gh1", "no_user")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	f.gh.AssertNumberOfCalls(t, "RemoveTeamMember", 0)
}

func TestTeamRemoveNotInRemoteTeam(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.team1.AddMember("reg_gh_id")
	f.expectUsers()
	f.expectTeams()
	f.gh.On("HasTeamMember", mock.Anything, "reg_username", "1").Return(false, nil)

	// A member the directory does not know about is a detected
	// inconsistency, not a silent success.
	_, err := f.uc.TeamRemove(context.Background(), "lead", "gh1", "regular")
	require.ErrorIs(t, err, entities.ErrRemoteAPI)
	require.True(t, f.team1.HasMember("reg_gh_id"))
	f.gh.AssertNumberOfCalls(t, "RemoveTeamMember", 0)
	f.repo.AssertNumberOfCalls(t, "StoreTeam", 0)
}

func TestTeamRemoveMembershipCheckError(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.expectUsers()
	f.expectTeams()
	f.gh.On("HasTeamMember", mock.Anything, "reg_username", "1").Return(false, remoteErr())

	_, err := f.uc.TeamRemove(context.Background(), "lead", "gh1", "regular")
	require.ErrorIs(t, err, entities.ErrRemoteAPI)
	f.repo.AssertNumberOfCalls(t, "StoreTeam", 0)
}

func TestTeamRemoveStoreFailure(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.expectUsers()
	f.expectTeams()
	f.gh.On("HasTeamMember", mock.Anything, "reg_username", "1").Return(true, nil)
	f.gh.On("RemoveTeamMember", mock.Anything, "reg_username", "1").Return(nil)
	f.repo.On("StoreTeam", mock.Anything, mock.Anything).Return(false)

	removed, err := f.uc.TeamRemove(context.Background(), "lead", "gh1", "regular")
	require.NoError(t, err)
	require.False(t, removed)
}

func TestTeamRemoveSuccess(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.team1.AddMember("reg_gh_id")
	f.expectUsers()
	f.expectTeams()
	f.gh.On("HasTeamMember", mock.Anything, "reg_username", "1").Return(true, nil)
	f.gh.On("RemoveTeamMember", mock.Anything, "reg_username", "1").Return(nil)
	f.repo.On("StoreTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return !team.HasMember("reg_gh_id")
	})).Return(true)

	removed, err := f.uc.TeamRemove(context.Background(), "lead", "gh1", "regular")
	require.NoError(t, err)
	require.True(t, removed)
	f.gh.AssertCalled(t, "RemoveTeamMember", mock.Anything, "reg_username", "1")
	f.repo.AssertExpectations(t)
}

func TestTeamEditMissingCaller(t *testing.T) {
	f := newFixture()
	f.expectUsers()

	_, err := f.uc.TeamEdit(context.Background(), "no_user", "gh1", entities.TeamEdits{})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestTeamEditMissingTeam(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.expectTeams()

	_, err := f.uc.TeamEdit(context.Background(), "lead", "no_team", entities.TeamEdits{})
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
}

func TestTeamEditDuplicateTeamName(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.expectTeams()

	_, err := f.uc.TeamEdit(context.Background(), "lead", "gh3", entities.TeamEdits{})
	require.ErrorIs(t, err, entities.ErrTeamAmbiguous)
}

func TestTeamEditPermissionDenied(t *testing.T) {
	f := newFixture()
	f.expectUsers()
	f.expectTeams()

	_, err := f.uc.TeamEdit(context.Background(), "regular", "gh1", entities.TeamEdits{})
	require.ErrorIs(t, err, entities.ErrPermissionDenied)
}

func TestTeamEditStoreFailure(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.expectUsers()
	f.expectTeams()
	f.repo.On("StoreTeam", mock.Anything, mock.Anything).Return(false)

	name := "tempname"
	edited, err := f.uc.TeamEdit(context.Background(), "lead", "gh1", entities.TeamEdits{DisplayName: &name})
	require.NoError(t, err)
	require.False(t, edited)
}

func TestTeamEditDisplayName(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.expectUsers()
	f.expectTeams()
	f.repo.On("StoreTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return team.DisplayName == "tempname"
	})).Return(true)

	name := "tempname"
	edited, err := f.uc.TeamEdit(context.Background(), "lead", "gh1", entities.TeamEdits{DisplayName: &name})
	require.NoError(t, err)
	require.True(t, edited)
	f.repo.AssertExpectations(t)
}

func TestTeamEditPlatform(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.expectUsers()
	f.expectTeams()
	// Partial update: the display name stays untouched.
	f.repo.On("StoreTeam", mock.Anything, mock.MatchedBy(func(team entities.Team) bool {
		return team.Platform == "tempplat" && team.DisplayName == "name1"
	})).Return(true)

	platform := "tempplat"
	edited, err := f.uc.TeamEdit(context.Background(), "lead", "gh1", entities.TeamEdits{Platform: &platform})
	require.NoError(t, err)
	require.True(t, edited)
	f.repo.AssertExpectations(t)
}

func TestTeamEditNoDirectoryCalls(t *testing.T) {
	f := newFixture()
	f.team1.AddLead("lead_gh_id")
	f.expectUsers()
	f.expectTeams()
	f.repo.On("StoreTeam", mock.Anything, mock.Anything).Return(true)

	name := "tempname"
	_, err := f.uc.TeamEdit(context.Background(), "lead", "gh1", entities.TeamEdits{DisplayName: &name})
	require.NoError(t, err)
	require.Empty(t, f.gh.Calls)
	require.Empty(t, f.sl.Calls)
}
