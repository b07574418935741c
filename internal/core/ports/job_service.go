package ports

import (
	"context"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
)

// CreateJobInput carries everything needed to post a new job. The posting
// always starts in pending, awaiting moderation.
type CreateJobInput struct {
	Actor          domain.Actor
	Title          string
	Description    string
	City           string
	Specialization string
	Wage           float64
	PayType        string
	// DurationDays defaults to 1 when left at zero.
	DurationDays int
}

// ManagedJob is one row of the manage view: the posting plus how many
// applications it has received.
type ManagedJob struct {
	Job          *domain.Job
	Applications int64
}

// SiteStats is the landing-page summary.
type SiteStats struct {
	ActiveJobs int64
	Workers    int64
	Employers  int64
	LatestJobs []*domain.Job
}

// JobService implements the posting lifecycle: creation, the moderation
// state machine, and the public and management views.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	// ListApproved returns publicly visible jobs, optionally filtered by a
	// case-insensitive substring search.
	ListApproved(ctx context.Context, search string) ([]*domain.Job, error)
	// Get returns a job subject to the visibility rule: non-approved jobs
	// are only readable by the owning employer or a moderator.
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Job, error)
	// ChangeStatus applies one of approve/reject/close per the action table.
	ChangeStatus(ctx context.Context, actor domain.Actor, id string, action string) (*domain.Job, error)
	// Manage returns the employer's own jobs (all statuses) or, for a
	// moderator, every pending job.
	Manage(ctx context.Context, actor domain.Actor) ([]ManagedJob, error)
	Stats(ctx context.Context) (*SiteStats, error)
}
