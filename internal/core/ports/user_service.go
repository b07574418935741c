package ports

import (
	"context"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
)

// UpdateProfileInput overwrites the mutable profile fields of the calling
// user. ExpYears below zero is coerced to zero.
type UpdateProfileInput struct {
	UserID    string
	Phone     string
	Education string
	ExpYears  int
	AvatarURL string
}

// UserService exposes profile reads and updates for the authenticated user.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error)
}
