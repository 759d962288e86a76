package domain

import "strings"

// Role is the authorization level attached to a user account.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
	RoleUser      Role = "USER"
)

// ParseRole converts a request-supplied role string into a Role.
// Matching is case-insensitive; unknown values yield ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleModerator:
		return RoleModerator, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrInvalidRole
	}
}

// User models an account in the system. The password digest is opaque
// (bcrypt) and never serialized onto the wire.
type User struct {
	Username       string `json:"username"`
	PasswordDigest string `json:"-"`
	Role           Role   `json:"role"`
}
