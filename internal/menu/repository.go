package menu

import (
	"context"
	"errors"
)

// ErrNotFound covers both a missing job and a job owned by someone else.
// Callers never learn which, so job ids cannot be probed.
var ErrNotFound = errors.New("menu not found")

// Repository defines all persistence operations for menu jobs.
type Repository interface {

	// -------------------------------
	// Owner-scoped CRUD
	// -------------------------------

	Create(ctx context.Context, job *MenuJob) error

	// GetByOwner returns ErrNotFound for an unknown id or a foreign owner.
	GetByOwner(ctx context.Context, jobID, userID string) (*MenuJob, error)

	ListByOwner(ctx context.Context, userID string) ([]*MenuJob, error)

	// Update writes the job document back as a whole (last writer wins).
	Update(ctx context.Context, job *MenuJob) error

	DeleteByOwner(ctx context.Context, jobID, userID string) error

	// -------------------------------
	// Extraction worker
	// -------------------------------

	// MarkForAnalysis puts the job on the worker queue.
	MarkForAnalysis(ctx context.Context, jobID string) error

	// ClaimNextQueued atomically claims the next queued job,
	// or returns (nil, nil) when there is nothing to do.
	ClaimNextQueued(ctx context.Context) (*MenuJob, error)

	// -------------------------------
	// Admin
	// -------------------------------

	ListAll(ctx context.Context) ([]*MenuJob, error)
	DeleteAny(ctx context.Context, jobID string) error
	DeleteAllByUser(ctx context.Context, userID string) error
	Count(ctx context.Context) (int, error)
}
