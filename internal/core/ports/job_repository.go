package ports

import (
	"context"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
)

// ApprovedJobsFilter carries the query parameters for the public listing.
type ApprovedJobsFilter struct {
	// Search is matched case-insensitively as a substring against title,
	// city, specialization and description (logical OR). Empty = no filter.
	Search string
	// Limit caps the number of rows returned; 0 = no cap.
	Limit int
}

// JobRepository defines persistence operations for postings. All list
// methods return newest-first ordering.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	UpdateStatus(ctx context.Context, id string, status domain.JobStatus) error
	ListApproved(ctx context.Context, filter ApprovedJobsFilter) ([]*domain.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error)
	ListPending(ctx context.Context) ([]*domain.Job, error)
	CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error)
}
