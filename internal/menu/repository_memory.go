package menu

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository backs tests and local development without Postgres.
type InMemoryRepository struct {
	mu     sync.Mutex
	jobs   map[string]*MenuJob
	queued map[string]bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		jobs:   make(map[string]*MenuJob),
		queued: make(map[string]bool),
	}
}

// cloneJob copies the job and its items so callers and the store never
// share an Items backing array.
func cloneJob(job *MenuJob) *MenuJob {
	cp := *job
	cp.Items = append([]MenuItem(nil), job.Items...)
	return &cp
}

func (r *InMemoryRepository) Create(ctx context.Context, job *MenuJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	r.jobs[job.ID] = cloneJob(job)
	return nil
}

func (r *InMemoryRepository) GetByOwner(
	ctx context.Context,
	jobID string,
	userID string,
) (*MenuJob, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok || job.UserID != userID {
		return nil, ErrNotFound
	}
	return cloneJob(job), nil
}

func (r *InMemoryRepository) ListByOwner(
	ctx context.Context,
	userID string,
) ([]*MenuJob, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var jobs []*MenuJob
	for _, job := range r.jobs {
		if job.UserID == userID {
			jobs = append(jobs, cloneJob(job))
		}
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, job *MenuJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[job.ID]; !ok {
		return ErrNotFound
	}
	job.UpdatedAt = time.Now()
	r.jobs[job.ID] = cloneJob(job)
	return nil
}

func (r *InMemoryRepository) DeleteByOwner(
	ctx context.Context,
	jobID string,
	userID string,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok || job.UserID != userID {
		return ErrNotFound
	}
	delete(r.jobs, jobID)
	delete(r.queued, jobID)
	return nil
}

func (r *InMemoryRepository) MarkForAnalysis(ctx context.Context, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return ErrNotFound
	}
	job.Status = StatusAnalyzing
	job.FailureReason = nil
	job.UpdatedAt = time.Now()
	r.queued[jobID] = true
	return nil
}

func (r *InMemoryRepository) ClaimNextQueued(ctx context.Context) (*MenuJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var oldest *MenuJob
	for id := range r.queued {
		job := r.jobs[id]
		if job == nil || job.Status != StatusAnalyzing {
			continue
		}
		if oldest == nil || job.UpdatedAt.Before(oldest.UpdatedAt) {
			oldest = job
		}
	}
	if oldest == nil {
		return nil, nil
	}

	delete(r.queued, oldest.ID)
	return cloneJob(oldest), nil
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]*MenuJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var jobs []*MenuJob
	for _, job := range r.jobs {
		jobs = append(jobs, cloneJob(job))
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}

func (r *InMemoryRepository) DeleteAny(ctx context.Context, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[jobID]; !ok {
		return ErrNotFound
	}
	delete(r.jobs, jobID)
	delete(r.queued, jobID)
	return nil
}

func (r *InMemoryRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, job := range r.jobs {
		if job.UserID == userID {
			delete(r.jobs, id)
			delete(r.queued, id)
		}
	}
	return nil
}

func (r *InMemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs), nil
}
