package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "strings"

// Role represents an application's authorization role.
// Keep string form for easy persistence.
// Valid values are defined as constants below.
type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleGuest || r == RoleStaff
}

// ParseRole converts user input into a Role. Matching is case-insensitive.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Identity represents the authenticated principal.
// The JSON shape is the persisted form and must stay stable across releases.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Type  Role   `json:"type"`
}

// Validate reports whether the identity is complete enough to back a session.
func (i Identity) Validate() bool {
	return strings.TrimSpace(i.Email) != "" && i.Type.Valid()
}

// IsGuest returns true if the identity role is guest.
func (i Identity) IsGuest() bool { return i.Type == RoleGuest }

// IsStaff returns true if the identity role is staff.
func (i Identity) IsStaff() bool { return i.Type == RoleStaff }
