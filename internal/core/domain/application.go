package domain

import "time"

// ApplicationStatus is the review state of an application. Only "applied" is
// ever set by the exposed surface; accepted/rejected are stored and returned
// but no operation currently transitions into them.
type ApplicationStatus string

const (
	ApplicationApplied  ApplicationStatus = "applied"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application links one worker to one job. The (JobID, WorkerID) pair is
// unique, enforced by the storage layer.
type Application struct {
	ID        string            `json:"id"`
	JobID     string            `json:"job_id"`
	WorkerID  string            `json:"worker_id"`
	Note      string            `json:"note,omitempty"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}
