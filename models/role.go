package models

import "fmt"

// Role is the closed set of authorization roles a user account can hold.
// Using a dedicated type instead of free-form strings makes an unknown role
// a validation error rather than a silent authorization bypass.
type Role string

const (
	// RoleGuest is the default role assigned to self-registered accounts.
	RoleGuest Role = "guest"

	// RoleAdmin grants access to hotel mutation and user management routes.
	RoleAdmin Role = "admin"
)

// ParseRole converts a raw string into a Role.
// An empty string resolves to [RoleGuest]; anything outside the closed set
// is rejected.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleGuest, nil
	case RoleGuest, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role belongs to the closed role set.
func (r Role) Valid() bool {
	return r == RoleGuest || r == RoleAdmin
}

// In reports whether the role is a member of the given allowed set.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
