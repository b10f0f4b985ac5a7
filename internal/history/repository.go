package history

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("snapshot not found")

// Repository is append-only by contract: snapshots can be inserted and
// read but never updated or deleted.
type Repository interface {
	Insert(ctx context.Context, snap *Snapshot) error

	// ListByOwner returns the owner's snapshots ordered by snapshot date
	// ascending.
	ListByOwner(ctx context.Context, userID string) ([]*Snapshot, error)

	// GetByOwner returns ErrNotFound for an unknown id or a foreign owner.
	GetByOwner(ctx context.Context, snapshotID, userID string) (*Snapshot, error)
}
