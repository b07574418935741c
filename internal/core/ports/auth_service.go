package ports

import (
	"context"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
)

// RegisterInput carries the registration form fields. Role strings outside
// the known set fall back to worker.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService implements account registration and session management.
// Register and Login both return a signed session token, since registration
// establishes a session for the new account.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the given token until its natural expiry.
	Logout(ctx context.Context, token string) error
}
