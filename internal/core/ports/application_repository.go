package ports

import (
	"context"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
)

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	// Create inserts a new application. The storage layer enforces the
	// (job_id, worker_id) unique constraint; a violation is reported as
	// domain.ErrDuplicateApplication, which also resolves the race between
	// two concurrent applies for the same pair.
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	// ListByWorker returns the worker's applications, most recent first.
	ListByWorker(ctx context.Context, workerID string) ([]*domain.Application, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
}
