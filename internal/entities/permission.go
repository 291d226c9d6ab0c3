package entities

import "fmt"

// Permission is the workspace-wide authority level of a user. Levels are
// totally ordered: member < team_lead < admin.
type Permission int

const (
	PermissionMember Permission = iota + 1
	PermissionTeamLead
	PermissionAdmin
)

// AtLeast reports whether p grants the authority of min.
func (p Permission) AtLeast(min Permission) bool {
	return p >= min
}

func (p Permission) String() string {
	switch p {
	case PermissionMember:
		return "member"
	case PermissionTeamLead:
		return "team_lead"
	case PermissionAdmin:
		return "admin"
	default:
		return fmt.Sprintf("permission(%d)", int(p))
	}
}

// ParsePermission converts a stored level string back to a Permission.
func ParsePermission(s string) (Permission, error) {
	switch s {
	case "member":
		return PermissionMember, nil
	case "team_lead":
		return PermissionTeamLead, nil
	case "admin":
		return PermissionAdmin, nil
	default:
		return 0, fmt.Errorf("%w: unknown permission level %q", ErrInvalidArgument, s)
	}
}
