package ports

import (
	"context"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Create inserts a new user. A unique-constraint violation on email is
	// reported as domain.ErrDuplicateEmail.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
