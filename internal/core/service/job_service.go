package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
	"github.com/kreker0001/TimeJobs/internal/core/ports"
)

// latestJobsLimit caps the landing-page listing.
const latestJobsLimit = 6

// JobService implements the posting lifecycle and views.
type JobService struct {
	jobs         ports.JobRepository
	users        ports.UserRepository
	applications ports.ApplicationRepository
	logger       zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, users ports.UserRepository, applications ports.ApplicationRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, users: users, applications: applications, logger: logger}
}

// Create posts a new job in pending status on behalf of an employer.
func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if input.Actor.Role != domain.RoleEmployer {
		return nil, domain.ErrForbidden
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrValidation
	}
	if input.Wage < 0 || input.DurationDays < 0 {
		return nil, domain.ErrValidation
	}
	duration := input.DurationDays
	if duration == 0 {
		duration = 1
	}

	job := &domain.Job{
		EmployerID:     input.Actor.ID,
		Title:          title,
		Description:    input.Description,
		City:           input.City,
		Specialization: input.Specialization,
		Wage:           input.Wage,
		PayType:        domain.ParsePayType(input.PayType),
		DurationDays:   duration,
		Status:         domain.JobPending,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Str("employer_id", input.Actor.ID).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", created.ID).Str("employer_id", created.EmployerID).Msg("job submitted for moderation")
	return created, nil
}

func (s *JobService) ListApproved(ctx context.Context, search string) ([]*domain.Job, error) {
	return s.jobs.ListApproved(ctx, ports.ApprovedJobsFilter{Search: strings.TrimSpace(search)})
}

// Get applies the visibility rule: an unpublished job is only readable by
// its owner or a moderator, and denial never includes job contents.
func (s *JobService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewJob(actor, job) {
		return nil, domain.ErrJobNotVisible
	}
	return job, nil
}

// ChangeStatus runs one approve/reject/close action through the
// authorization table and persists the resulting status.
func (s *JobService) ChangeStatus(ctx context.Context, actor domain.Actor, id string, action string) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := domain.NextStatus(actor, job, domain.StatusAction(action))
	if err != nil {
		return nil, err
	}

	if err := s.jobs.UpdateStatus(ctx, job.ID, next); err != nil {
		return nil, err
	}
	job.Status = next

	s.logger.Info().
		Str("job_id", job.ID).
		Str("action", action).
		Str("status", string(next)).
		Str("actor_id", actor.ID).
		Msg("job status changed")
	return job, nil
}

// Manage builds the management view: an employer sees their own postings in
// every status with application counts, a moderator sees the pending queue.
func (s *JobService) Manage(ctx context.Context, actor domain.Actor) ([]ports.ManagedJob, error) {
	var (
		jobs []*domain.Job
		err  error
	)
	switch actor.Role {
	case domain.RoleEmployer:
		jobs, err = s.jobs.ListByEmployer(ctx, actor.ID)
	case domain.RoleModerator:
		jobs, err = s.jobs.ListPending(ctx)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	managed := make([]ports.ManagedJob, 0, len(jobs))
	for _, job := range jobs {
		count, err := s.applications.CountByJob(ctx, job.ID)
		if err != nil {
			return nil, err
		}
		managed = append(managed, ports.ManagedJob{Job: job, Applications: count})
	}
	return managed, nil
}

// Stats summarizes the marketplace for the landing page.
func (s *JobService) Stats(ctx context.Context) (*ports.SiteStats, error) {
	active, err := s.jobs.CountByStatus(ctx, domain.JobApproved)
	if err != nil {
		return nil, err
	}
	workers, err := s.users.CountByRole(ctx, domain.RoleWorker)
	if err != nil {
		return nil, err
	}
	employers, err := s.users.CountByRole(ctx, domain.RoleEmployer)
	if err != nil {
		return nil, err
	}
	latest, err := s.jobs.ListApproved(ctx, ports.ApprovedJobsFilter{Limit: latestJobsLimit})
	if err != nil {
		return nil, err
	}

	return &ports.SiteStats{
		ActiveJobs: active,
		Workers:    workers,
		Employers:  employers,
		LatestJobs: latest,
	}, nil
}
