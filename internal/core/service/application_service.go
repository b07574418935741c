package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
	"github.com/kreker0001/TimeJobs/internal/core/ports"
)

// ApplicationService implements the worker's apply flow and own-listing.
type ApplicationService struct {
	applications ports.ApplicationRepository
	jobs         ports.JobRepository
	users        ports.UserRepository
	logger       zerolog.Logger
}

func NewApplicationService(applications ports.ApplicationRepository, jobs ports.JobRepository, users ports.UserRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, users: users, logger: logger}
}

// Apply files one application for (job, worker). There is no pre-check for
// an existing pair: the insert relies on the storage unique constraint, so
// the loser of two concurrent applies observes ErrDuplicateApplication.
func (s *ApplicationService) Apply(ctx context.Context, actor domain.Actor, jobID, note string) (*domain.Application, error) {
	if actor.Role != domain.RoleWorker {
		return nil, domain.ErrForbidden
	}

	worker, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(worker.Phone) == "" {
		return nil, domain.ErrIncompleteProfile
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	app := &domain.Application{
		JobID:     job.ID,
		WorkerID:  worker.ID,
		Note:      strings.TrimSpace(note),
		Status:    domain.ApplicationApplied,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.applications.Create(ctx, app)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("job_id", jobID).Str("worker_id", worker.ID).Msg("failed to create application")
		return nil, err
	}

	s.logger.Info().Str("application_id", created.ID).Str("job_id", job.ID).Str("worker_id", worker.ID).Msg("application filed")
	return created, nil
}

// ListOwn returns the worker's applications newest-first, each paired with
// its job.
func (s *ApplicationService) ListOwn(ctx context.Context, actor domain.Actor) ([]ports.ApplicationView, error) {
	if actor.Role != domain.RoleWorker {
		return nil, domain.ErrForbidden
	}

	apps, err := s.applications.ListByWorker(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ApplicationView, 0, len(apps))
	for _, app := range apps {
		job, err := s.jobs.FindByID(ctx, app.JobID)
		if err != nil {
			return nil, err
		}
		views = append(views, ports.ApplicationView{Application: app, Job: job})
	}
	return views, nil
}
