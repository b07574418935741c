package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
	"github.com/kreker0001/TimeJobs/internal/core/ports"
)

// In-memory repositories shared by the service tests. They mirror the
// storage contracts: unique email, unique (job_id, worker_id), newest-first
// listings.

type memUserRepo struct {
	mu    sync.Mutex
	users []*domain.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user-%d", r.seq)
	r.users = append(r.users, copy)
	return cloneUser(copy), nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = cloneUser(user)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type memJobRepo struct {
	mu   sync.Mutex
	jobs []*domain.Job
	seq  int
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{}
}

func cloneJob(j *domain.Job) *domain.Job {
	if j == nil {
		return nil
	}
	clone := *j
	return &clone
}

func (r *memJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := cloneJob(job)
	copy.ID = fmt.Sprintf("job-%d", r.seq)
	r.jobs = append(r.jobs, copy)
	return cloneJob(copy), nil
}

func (r *memJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if j.ID == id {
			return cloneJob(j), nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (r *memJobRepo) UpdateStatus(_ context.Context, id string, status domain.JobStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if j.ID == id {
			j.Status = status
			return nil
		}
	}
	return domain.ErrJobNotFound
}

func jobMatches(j *domain.Job, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range []string{j.Title, j.City, j.Specialization, j.Description} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (r *memJobRepo) ListApproved(_ context.Context, filter ports.ApprovedJobsFilter) ([]*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Job
	// insertion order approximates created_at; newest first
	for i := len(r.jobs) - 1; i >= 0; i-- {
		j := r.jobs[i]
		if j.Status != domain.JobApproved || !jobMatches(j, filter.Search) {
			continue
		}
		out = append(out, cloneJob(j))
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *memJobRepo) ListByEmployer(_ context.Context, employerID string) ([]*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Job
	for i := len(r.jobs) - 1; i >= 0; i-- {
		if r.jobs[i].EmployerID == employerID {
			out = append(out, cloneJob(r.jobs[i]))
		}
	}
	return out, nil
}

func (r *memJobRepo) ListPending(_ context.Context) ([]*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Job
	for i := len(r.jobs) - 1; i >= 0; i-- {
		if r.jobs[i].Status == domain.JobPending {
			out = append(out, cloneJob(r.jobs[i]))
		}
	}
	return out, nil
}

func (r *memJobRepo) CountByStatus(_ context.Context, status domain.JobStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, j := range r.jobs {
		if j.Status == status {
			n++
		}
	}
	return n, nil
}

type memApplicationRepo struct {
	mu   sync.Mutex
	apps []*domain.Application
	seq  int
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{}
}

func cloneApplication(a *domain.Application) *domain.Application {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *memApplicationRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// the unique constraint on (job_id, worker_id)
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.WorkerID == app.WorkerID {
			return nil, domain.ErrDuplicateApplication
		}
	}
	r.seq++
	copy := cloneApplication(app)
	copy.ID = fmt.Sprintf("app-%d", r.seq)
	r.apps = append(r.apps, copy)
	return cloneApplication(copy), nil
}

func (r *memApplicationRepo) ListByWorker(_ context.Context, workerID string) ([]*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Application
	for i := len(r.apps) - 1; i >= 0; i-- {
		if r.apps[i].WorkerID == workerID {
			out = append(out, cloneApplication(r.apps[i]))
		}
	}
	return out, nil
}

func (r *memApplicationRepo) CountByJob(_ context.Context, jobID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.apps {
		if a.JobID == jobID {
			n++
		}
	}
	return n, nil
}

type stubRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (s *stubRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = ttl
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[jti]
	return ok, nil
}
