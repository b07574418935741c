package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
)

// ApplicationRepository persists applications. The uq_job_worker composite
// index makes the insert the authoritative duplicate check.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	m := applicationFromDomain(app)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return m.toDomain(), nil
}

func (r *ApplicationRepository) ListByWorker(ctx context.Context, workerID string) ([]*domain.Application, error) {
	var models []applicationModel
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	apps := make([]*domain.Application, 0, len(models))
	for i := range models {
		apps = append(apps, models[i].toDomain())
	}
	return apps, nil
}

func (r *ApplicationRepository) CountByJob(ctx context.Context, jobID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&applicationModel{}).Where("job_id = ?", jobID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return count, nil
}
