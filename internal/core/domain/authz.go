package domain

// StatusAction is a moderation/lifecycle action on a job posting.
type StatusAction string

const (
	ActionApprove StatusAction = "approve"
	ActionReject  StatusAction = "reject"
	ActionClose   StatusAction = "close"
)

// statusActions is the single authorization table for job status changes.
// Every action registers which role may trigger it, whether ownership of the
// job is additionally required, and the resulting status.
var statusActions = map[StatusAction]struct {
	Role      Role
	OwnerOnly bool
	Next      JobStatus
}{
	ActionApprove: {Role: RoleModerator, Next: JobApproved},
	ActionReject:  {Role: RoleModerator, Next: JobRejected},
	ActionClose:   {Role: RoleEmployer, OwnerOnly: true, Next: JobRejected},
}

// NextStatus resolves a status action against the table above and returns the
// status the job moves to. Unknown actions surface ErrInvalidAction to actors
// who could otherwise manage the job, and a uniform ErrForbidden to everyone
// else so the denial leaks nothing.
func NextStatus(actor Actor, job *Job, action StatusAction) (JobStatus, error) {
	rule, ok := statusActions[action]
	if !ok {
		if actor.Role == RoleModerator || (actor.Role == RoleEmployer && actor.ID == job.EmployerID) {
			return "", ErrInvalidAction
		}
		return "", ErrForbidden
	}
	if actor.Role != rule.Role {
		return "", ErrForbidden
	}
	if rule.OwnerOnly && actor.ID != job.EmployerID {
		return "", ErrForbidden
	}
	return rule.Next, nil
}

// CanViewJob reports whether the actor may read the full job record.
// Approved jobs are public; unpublished ones are visible only to the owning
// employer and to moderators.
func CanViewJob(actor Actor, job *Job) bool {
	if job.Status == JobApproved {
		return true
	}
	if actor.Role == RoleModerator {
		return true
	}
	return actor.Role == RoleEmployer && actor.ID == job.EmployerID
}
