package entities

import "sort"

// Team mirrors a GitHub org team, keyed by its GitHub team id. Members and
// Leads hold GitHub user ids; both behave as sets, so repeated adds are
// no-ops. Leads are not required to be members.
type Team struct {
	GithubTeamID string
	Name         string
	DisplayName  string
	Platform     string
	Members      map[string]struct{}
	Leads        map[string]struct{}
}

// NewTeam returns a team with empty membership.
func NewTeam(githubTeamID, name, displayName string) *Team {
	return &Team{
		GithubTeamID: githubTeamID,
		Name:         name,
		DisplayName:  displayName,
		Members:      make(map[string]struct{}),
		Leads:        make(map[string]struct{}),
	}
}

// AddMember records a member github id. Idempotent.
func (t *Team) AddMember(githubID string) {
	if t.Members == nil {
		t.Members = make(map[string]struct{})
	}
	t.Members[githubID] = struct{}{}
}

// RemoveMember drops a member github id. Removing an absent id is a no-op.
func (t *Team) RemoveMember(githubID string) {
	delete(t.Members, githubID)
}

// HasMember reports whether the github id is a recorded member.
func (t *Team) HasMember(githubID string) bool {
	_, ok := t.Members[githubID]
	return ok
}

// AddLead records a team lead github id. Idempotent.
func (t *Team) AddLead(githubID string) {
	if t.Leads == nil {
		t.Leads = make(map[string]struct{})
	}
	t.Leads[githubID] = struct{}{}
}

// HasLead reports whether the github id is a recorded lead of this team.
func (t *Team) HasLead(githubID string) bool {
	_, ok := t.Leads[githubID]
	return ok
}

// MemberList returns the member github ids in sorted order.
func (t *Team) MemberList() []string {
	return sortedKeys(t.Members)
}

// LeadList returns the lead github ids in sorted order.
func (t *Team) LeadList() []string {
	return sortedKeys(t.Leads)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UniqueTeam reduces a slug query result to the single matching team. Zero
// matches is ErrTeamNotFound; more than one is ErrTeamAmbiguous, a detected
// data-integrity violation the caller must refuse to operate on.
func UniqueTeam(teams []Team) (*Team, error) {
	switch len(teams) {
	case 0:
		return nil, ErrTeamNotFound
	case 1:
		team := teams[0]
		return &team, nil
	default:
		return nil, ErrTeamAmbiguous
	}
}

// TeamCreateOptions carries the optional arguments of team creation.
type TeamCreateOptions struct {
	DisplayName string
	Platform    string
	Channel     string
	LeadID      string
}

// TeamEdits carries the optional fields of a team edit. Nil fields are left
// untouched.
type TeamEdits struct {
	DisplayName *string
	Platform    *string
}
