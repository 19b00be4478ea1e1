package domain

import "strings"

// Role is the caller-asserted access class carried on each request.
// It is advisory: nothing verifies the assertion against a credential store.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDirector Role = "director"
	RoleEmployee Role = "employee"
	RoleGuest    Role = "guest"
)

// ParseRole maps a declared role string to a Role, case-insensitively.
// Missing or unrecognized declarations fall back to RoleGuest.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleDirector:
		return RoleDirector
	case RoleEmployee:
		return RoleEmployee
	default:
		return RoleGuest
	}
}
