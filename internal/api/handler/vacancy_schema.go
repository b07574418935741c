package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
)

type createJobRequest struct {
	Title          string  `json:"title"          validate:"required"`
	Description    string  `json:"description"`
	City           string  `json:"city"`
	Specialization string  `json:"specialization"`
	Wage           float64 `json:"wage"           validate:"gte=0"`
	PayType        string  `json:"pay_type"       validate:"omitempty,oneof=shift hourly"`
	DurationDays   int     `json:"duration_days"  validate:"gte=0"`
}

// jobResponse is the transport view of a posting. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type jobResponse struct {
	ID             string    `json:"id"`
	EmployerID     string    `json:"employer_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	City           string    `json:"city,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Wage           float64   `json:"wage"`
	PayType        string    `json:"pay_type"`
	DurationDays   int       `json:"duration_days"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func toJobResponse(job *domain.Job) jobResponse {
	return jobResponse{
		ID:             job.ID,
		EmployerID:     job.EmployerID,
		Title:          job.Title,
		Description:    job.Description,
		City:           job.City,
		Specialization: job.Specialization,
		Wage:           job.Wage,
		PayType:        string(job.PayType),
		DurationDays:   job.DurationDays,
		Status:         string(job.Status),
		CreatedAt:      job.CreatedAt,
	}
}

func toJobResponses(jobs []*domain.Job) []jobResponse {
	out := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, toJobResponse(job))
	}
	return out
}

type listJobsResponse struct {
	Data []jobResponse `json:"data"`
}

type managedJobResponse struct {
	jobResponse
	Applications int64 `json:"applications"`
}

type manageResponse struct {
	Data []managedJobResponse `json:"data"`
}

type applyRequest struct {
	Note string `json:"note"`
}

type applicationResponse struct {
	ID        string       `json:"id"`
	JobID     string       `json:"job_id"`
	Note      string       `json:"note,omitempty"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	Job       *jobResponse `json:"job,omitempty"`
}

type listApplicationsResponse struct {
	Data []applicationResponse `json:"data"`
}

type statsResponse struct {
	ActiveJobs int64         `json:"active_jobs"`
	Workers    int64         `json:"workers"`
	Employers  int64         `json:"employers"`
	LatestJobs []jobResponse `json:"latest_jobs"`
}

// updateProfileRequest binds exp_years loosely: the profile form is free
// text, so absent, non-numeric and negative values all read as zero instead
// of failing the request.
type updateProfileRequest struct {
	Phone     string `json:"phone"`
	Education string `json:"education"`
	ExpYears  any    `json:"exp_years"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

func (r updateProfileRequest) expYears() int {
	switch v := r.ExpYears.(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}
