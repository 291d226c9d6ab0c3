// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist in the record store.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound signals that no team matches the requested name.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTeamAmbiguous signals that more than one stored team shares a name.
	ErrTeamAmbiguous = errors.New("team name is not unique")
	// ErrPermissionDenied signals insufficient caller authority.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrRemoteAPI signals a failure from the GitHub or Slack API.
	ErrRemoteAPI = errors.New("remote api error")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
