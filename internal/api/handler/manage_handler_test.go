package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
	"github.com/kreker0001/TimeJobs/internal/core/ports"
)

func TestManageHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubJobService{
		manageFn: func(ctx context.Context, actor domain.Actor) ([]ports.ManagedJob, error) {
			if actor.ID != "emp-1" || actor.Role != domain.RoleEmployer {
				t.Fatalf("actor not forwarded: %+v", actor)
			}
			return []ports.ManagedJob{
				{Job: &domain.Job{ID: "job-1", Status: domain.JobApproved}, Applications: 4},
				{Job: &domain.Job{ID: "job-2", Status: domain.JobPending}, Applications: 0},
			}, nil
		},
	}
	handler := NewManageHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/manage", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "emp-1")
	c.Set("role", "employer")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp manageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(resp.Data))
	}
	if resp.Data[0].ID != "job-1" || resp.Data[0].Applications != 4 {
		t.Fatalf("unexpected row: %+v", resp.Data[0])
	}
}

func TestManageHandler_ChangeStatus(t *testing.T) {
	e := newTestEcho()
	stub := &stubJobService{
		changeStatusFn: func(ctx context.Context, actor domain.Actor, id, action string) (*domain.Job, error) {
			if actor.Role != domain.RoleModerator {
				t.Fatalf("actor not forwarded: %+v", actor)
			}
			if id != "job-1" || action != "approve" {
				t.Fatalf("params not forwarded: %s %s", id, action)
			}
			return &domain.Job{ID: id, Status: domain.JobApproved}, nil
		},
	}
	handler := NewManageHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/manage/jobs/job-1/status/approve", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "action")
	c.SetParamValues("job-1", "approve")
	c.Set("user_id", "mod-1")
	c.Set("role", "moderator")

	if err := handler.ChangeStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp jobResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "approved" {
		t.Fatalf("expected approved, got %q", resp.Status)
	}
}

func TestManageHandler_ChangeStatus_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubJobService{
		changeStatusFn: func(ctx context.Context, actor domain.Actor, id, action string) (*domain.Job, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewManageHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/manage/jobs/job-1/status/approve", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "action")
	c.SetParamValues("job-1", "approve")
	c.Set("user_id", "wrk-1")
	c.Set("role", "worker")

	if err := handler.ChangeStatus(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestManageHandler_ChangeStatus_UnknownAction(t *testing.T) {
	e := newTestEcho()
	stub := &stubJobService{
		changeStatusFn: func(ctx context.Context, actor domain.Actor, id, action string) (*domain.Job, error) {
			return nil, domain.ErrInvalidAction
		},
	}
	handler := NewManageHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/manage/jobs/job-1/status/publish", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "action")
	c.SetParamValues("job-1", "publish")
	c.Set("user_id", "mod-1")
	c.Set("role", "moderator")

	if err := handler.ChangeStatus(c); !errors.Is(err, domain.ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}
