package domain

import (
	"errors"
	"testing"
)

func TestNextStatus(t *testing.T) {
	job := &Job{ID: "job-1", EmployerID: "emp-1", Status: JobPending}

	tests := []struct {
		name    string
		actor   Actor
		action  StatusAction
		want    JobStatus
		wantErr error
	}{
		{"moderator approves", Actor{ID: "mod-1", Role: RoleModerator}, ActionApprove, JobApproved, nil},
		{"moderator rejects", Actor{ID: "mod-1", Role: RoleModerator}, ActionReject, JobRejected, nil},
		{"owner closes", Actor{ID: "emp-1", Role: RoleEmployer}, ActionClose, JobRejected, nil},
		{"other employer closes", Actor{ID: "emp-2", Role: RoleEmployer}, ActionClose, "", ErrForbidden},
		{"employer approves", Actor{ID: "emp-1", Role: RoleEmployer}, ActionApprove, "", ErrForbidden},
		{"worker approves", Actor{ID: "wrk-1", Role: RoleWorker}, ActionApprove, "", ErrForbidden},
		{"moderator closes", Actor{ID: "mod-1", Role: RoleModerator}, ActionClose, "", ErrForbidden},
		{"unknown action, moderator", Actor{ID: "mod-1", Role: RoleModerator}, StatusAction("publish"), "", ErrInvalidAction},
		{"unknown action, owner", Actor{ID: "emp-1", Role: RoleEmployer}, StatusAction("publish"), "", ErrInvalidAction},
		{"unknown action, worker", Actor{ID: "wrk-1", Role: RoleWorker}, StatusAction("publish"), "", ErrForbidden},
		{"unknown action, stranger employer", Actor{ID: "emp-2", Role: RoleEmployer}, StatusAction("publish"), "", ErrForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextStatus(tc.actor, job, tc.action)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("status = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCanViewJob(t *testing.T) {
	owner := Actor{ID: "emp-1", Role: RoleEmployer}
	stranger := Actor{ID: "emp-2", Role: RoleEmployer}
	worker := Actor{ID: "wrk-1", Role: RoleWorker}
	moderator := Actor{ID: "mod-1", Role: RoleModerator}
	anonymous := Actor{}

	approved := &Job{EmployerID: "emp-1", Status: JobApproved}
	pending := &Job{EmployerID: "emp-1", Status: JobPending}
	rejected := &Job{EmployerID: "emp-1", Status: JobRejected}

	tests := []struct {
		name  string
		actor Actor
		job   *Job
		want  bool
	}{
		{"anonymous sees approved", anonymous, approved, true},
		{"worker sees approved", worker, approved, true},
		{"anonymous blocked from pending", anonymous, pending, false},
		{"worker blocked from pending", worker, pending, false},
		{"stranger employer blocked from pending", stranger, pending, false},
		{"owner sees pending", owner, pending, true},
		{"owner sees rejected", owner, rejected, true},
		{"moderator sees pending", moderator, pending, true},
		{"moderator sees rejected", moderator, rejected, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanViewJob(tc.actor, tc.job); got != tc.want {
				t.Fatalf("CanViewJob = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"worker", RoleWorker},
		{"employer", RoleEmployer},
		{"moderator", RoleModerator},
		{"", RoleWorker},
		{"admin", RoleWorker},
	}
	for _, tc := range tests {
		if got := ParseRole(tc.in); got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
