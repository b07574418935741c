package ports

import (
	"context"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
)

// ApplicationView pairs an application with the job it targets, for the
// worker's own listing.
type ApplicationView struct {
	Application *domain.Application
	Job         *domain.Job
}

// ApplicationService implements the worker side of the marketplace.
type ApplicationService interface {
	// Apply files an application. Requires the worker role, a filled-in
	// phone number, and no existing application for the same job.
	Apply(ctx context.Context, actor domain.Actor, jobID, note string) (*domain.Application, error)
	// ListOwn returns the worker's applications, most recent first.
	ListOwn(ctx context.Context, actor domain.Actor) ([]ApplicationView, error)
}
