package domain

import "time"

// JobStatus represents the moderation state of a posting.
type JobStatus string

const (
	JobPending  JobStatus = "pending"
	JobApproved JobStatus = "approved"
	JobRejected JobStatus = "rejected"
)

// PayType says how the wage is quoted.
type PayType string

const (
	PayPerShift PayType = "shift"
	PayPerHour  PayType = "hourly"
)

// ParsePayType defaults to per-shift pay for empty or unknown values.
func ParsePayType(s string) PayType {
	switch PayType(s) {
	case PayPerShift, PayPerHour:
		return PayType(s)
	default:
		return PayPerShift
	}
}

// Job is a posting owned by one employer. It starts in pending and becomes
// publicly visible only once a moderator approves it.
type Job struct {
	ID             string    `json:"id"`
	EmployerID     string    `json:"employer_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	City           string    `json:"city,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Wage           float64   `json:"wage"`
	PayType        PayType   `json:"pay_type"`
	DurationDays   int       `json:"duration_days"`
	Status         JobStatus `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
