// Package mapper converts domain entities to transport representations.
package mapper

import "github.com/ubclaunchpad/rocket2.0/internal/entities"

// Team is the wire representation of a team.
type Team struct {
	GithubTeamID string   `json:"github_team_id"`
	Name         string   `json:"name"`
	DisplayName  string   `json:"display_name,omitempty"`
	Platform     string   `json:"platform,omitempty"`
	Members      []string `json:"members"`
	Leads        []string `json:"leads"`
}

// User is the wire representation of a user profile.
type User struct {
	SlackID        string `json:"slack_id"`
	GithubUsername string `json:"github_username,omitempty"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Position       string `json:"position,omitempty"`
	Major          string `json:"major,omitempty"`
	Biography      string `json:"biography,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	Permission     string `json:"permission"`
}

// ToTeam maps a team entity to its wire form. Member and lead sets come out
// sorted for stable output.
func ToTeam(t entities.Team) Team {
	return Team{
		GithubTeamID: t.GithubTeamID,
		Name:         t.Name,
		DisplayName:  t.DisplayName,
		Platform:     t.Platform,
		Members:      t.MemberList(),
		Leads:        t.LeadList(),
	}
}

// ToTeams maps a slice of team entities.
func ToTeams(teams []entities.Team) []Team {
	out := make([]Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, ToTeam(t))
	}
	return out
}

// ToUser maps a user entity to its wire form.
func ToUser(u entities.User) User {
	return User{
		SlackID:        u.SlackID,
		GithubUsername: u.GithubUsername,
		Name:           u.Name,
		Email:          u.Email,
		Position:       u.Position,
		Major:          u.Major,
		Biography:      u.Biography,
		ImageURL:       u.ImageURL,
		Permission:     u.Permission.String(),
	}
}
