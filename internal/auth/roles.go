package auth

import "errors"

// Roles. The admin flag in the session token is derived from the role.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// ValidateRole checks that the role is one the system knows.
func ValidateRole(role string) error {
	switch role {
	case RoleAdmin, RoleEmployee:
		return nil
	default:
		return errors.New("invalid role")
	}
}
