package entities

// User is a workspace member, keyed by Slack id.
type User struct {
	SlackID        string
	GithubID       string
	GithubUsername string
	Name           string
	Email          string
	Position       string
	Major          string
	Biography      string
	ImageURL       string
	Permission     Permission
}

// NewUser returns a user as created on first contact with the workspace.
func NewUser(slackID string) *User {
	return &User{
		SlackID:    slackID,
		Permission: PermissionMember,
	}
}

// UserEdits carries the optional fields of a profile edit. Nil fields are
// left untouched.
type UserEdits struct {
	Member         *string
	Name           *string
	Email          *string
	Position       *string
	GithubUsername *string
	Major          *string
	Biography      *string
}
