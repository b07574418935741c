package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
	"github.com/kreker0001/TimeJobs/internal/core/ports"
)

// JobRepository persists postings in the jobs table.
type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	m := jobFromDomain(job)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return m.toDomain(), nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	var m jobModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return m.toDomain(), nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id string, status domain.JobStatus) error {
	res := r.db.WithContext(ctx).Model(&jobModel{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return fmt.Errorf("update job status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// ListApproved returns publicly visible jobs newest first, optionally
// filtered by a case-insensitive substring over the searchable columns.
func (r *JobRepository) ListApproved(ctx context.Context, filter ports.ApprovedJobsFilter) ([]*domain.Job, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", string(domain.JobApproved)).
		Order("created_at DESC")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where(
			"title ILIKE ? OR city ILIKE ? OR specialization ILIKE ? OR description ILIKE ?",
			like, like, like, like,
		)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var models []jobModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list approved jobs: %w", err)
	}
	return toDomainJobs(models), nil
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error) {
	var models []jobModel
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list employer jobs: %w", err)
	}
	return toDomainJobs(models), nil
}

func (r *JobRepository) ListPending(ctx context.Context) ([]*domain.Job, error) {
	var models []jobModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.JobPending)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list pending jobs: %w", err)
	}
	return toDomainJobs(models), nil
}

func (r *JobRepository) CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&jobModel{}).Where("status = ?", string(status)).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return count, nil
}

func toDomainJobs(models []jobModel) []*domain.Job {
	jobs := make([]*domain.Job, 0, len(models))
	for i := range models {
		jobs = append(jobs, models[i].toDomain())
	}
	return jobs
}
