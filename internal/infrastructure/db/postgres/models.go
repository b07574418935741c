package postgres

import (
	"time"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
)

type userModel struct {
	ID           string `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string `gorm:"size:120;not null"`
	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;index;default:worker"`
	Phone        string `gorm:"size:50"`
	Education    string `gorm:"size:255"`
	ExpYears     int    `gorm:"default:0"`
	AvatarURL    string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

type jobModel struct {
	ID             string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	EmployerID     string     `gorm:"type:uuid;not null;index"`
	Employer       *userModel `gorm:"foreignKey:EmployerID"`
	Title          string     `gorm:"size:200;not null"`
	Description    string     `gorm:"type:text"`
	City           string     `gorm:"size:120"`
	Specialization string     `gorm:"size:120"`
	Wage           float64    `gorm:"default:0"`
	PayType        string     `gorm:"size:20;not null;default:shift"`
	DurationDays   int        `gorm:"default:1"`
	Status         string     `gorm:"size:20;not null;index;default:pending"`
	CreatedAt      time.Time
}

func (jobModel) TableName() string { return "jobs" }

// applicationModel carries the composite unique index that resolves the
// duplicate-apply race at the storage boundary.
type applicationModel struct {
	ID        string     `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	JobID     string     `gorm:"type:uuid;not null;uniqueIndex:uq_job_worker"`
	Job       *jobModel  `gorm:"foreignKey:JobID"`
	WorkerID  string     `gorm:"type:uuid;not null;uniqueIndex:uq_job_worker;index"`
	Worker    *userModel `gorm:"foreignKey:WorkerID"`
	Note      string     `gorm:"type:text"`
	Status    string     `gorm:"size:20;not null;default:applied"`
	CreatedAt time.Time
}

func (applicationModel) TableName() string { return "applications" }

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		Phone:        m.Phone,
		Education:    m.Education,
		ExpYears:     m.ExpYears,
		AvatarURL:    m.AvatarURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func userFromDomain(u *domain.User) *userModel {
	return &userModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Phone:        u.Phone,
		Education:    u.Education,
		ExpYears:     u.ExpYears,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *jobModel) toDomain() *domain.Job {
	return &domain.Job{
		ID:             m.ID,
		EmployerID:     m.EmployerID,
		Title:          m.Title,
		Description:    m.Description,
		City:           m.City,
		Specialization: m.Specialization,
		Wage:           m.Wage,
		PayType:        domain.PayType(m.PayType),
		DurationDays:   m.DurationDays,
		Status:         domain.JobStatus(m.Status),
		CreatedAt:      m.CreatedAt,
	}
}

func jobFromDomain(j *domain.Job) *jobModel {
	return &jobModel{
		ID:             j.ID,
		EmployerID:     j.EmployerID,
		Title:          j.Title,
		Description:    j.Description,
		City:           j.City,
		Specialization: j.Specialization,
		Wage:           j.Wage,
		PayType:        string(j.PayType),
		DurationDays:   j.DurationDays,
		Status:         string(j.Status),
		CreatedAt:      j.CreatedAt,
	}
}

func (m *applicationModel) toDomain() *domain.Application {
	return &domain.Application{
		ID:        m.ID,
		JobID:     m.JobID,
		WorkerID:  m.WorkerID,
		Note:      m.Note,
		Status:    domain.ApplicationStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func applicationFromDomain(a *domain.Application) *applicationModel {
	return &applicationModel{
		ID:        a.ID,
		JobID:     a.JobID,
		WorkerID:  a.WorkerID,
		Note:      a.Note,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
}
