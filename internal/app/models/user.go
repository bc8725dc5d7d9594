package models

import "strings"

// RoleName is the closed set of role identifiers the backend issues.
type RoleName string

const (
	RoleAdmin  RoleName = "ADMIN"
	RoleSeller RoleName = "SELLER"
	RoleUser   RoleName = "USER"
)

type Role struct {
	Name        RoleName `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

type Roles []Role

// HasAdmin is the single canonical admin-membership check. Role names
// arriving from the backend are compared case-insensitively.
func (r Roles) HasAdmin() bool {
	return r.Has(RoleAdmin)
}

func (r Roles) Has(name RoleName) bool {
	for _, role := range r {
		if strings.EqualFold(string(role.Name), string(name)) {
			return true
		}
	}
	return false
}

// UserProfile is the backend's user representation cached in the
// visitor session. IsAdmin is always derived from Roles, never trusted
// from storage without recomputation.
type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Roles    Roles  `json:"roles"`
}

func (u *UserProfile) IsAdmin() bool {
	if u == nil {
		return false
	}
	return u.Roles.HasAdmin()
}

// TokenPair carries the backend-issued access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResult is what the login and social-login endpoints return.
type AuthResult struct {
	TokenPair
	Authenticated bool `json:"authenticated"`
}
