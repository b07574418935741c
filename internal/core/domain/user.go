package domain

import "time"

// Role classifies what an account is allowed to do.
type Role string

const (
	RoleWorker    Role = "worker"
	RoleEmployer  Role = "employer"
	RoleModerator Role = "moderator"
)

// ParseRole normalizes a role string supplied at registration. Anything
// outside the known set falls back to worker.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleWorker, RoleEmployer, RoleModerator:
		return Role(s)
	default:
		return RoleWorker
	}
}

// User models an account. PasswordHash is an opaque bcrypt credential and is
// never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Education    string    `json:"education,omitempty"`
	ExpYears     int       `json:"exp_years"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Actor is the authenticated identity attached to a request. The zero value
// is the anonymous caller used for public read-only operations.
type Actor struct {
	ID   string
	Role Role
}

// Anonymous reports whether the actor carries no authenticated identity.
func (a Actor) Anonymous() bool {
	return a.ID == ""
}
