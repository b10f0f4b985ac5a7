package history

import (
	"context"
	"sort"
	"sync"
)

type InMemoryRepository struct {
	mu    sync.Mutex
	snaps map[string]*Snapshot
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{snaps: make(map[string]*Snapshot)}
}

func (r *InMemoryRepository) Insert(ctx context.Context, snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Stored as a copy so later mutation of the caller's value
	// cannot reach the frozen record.
	cp := *snap
	cp.Items = append([]SnapshotItem(nil), snap.Items...)
	r.snaps[snap.ID] = &cp
	return nil
}

func (r *InMemoryRepository) ListByOwner(
	ctx context.Context,
	userID string,
) ([]*Snapshot, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var snaps []*Snapshot
	for _, snap := range r.snaps {
		if snap.UserID == userID {
			cp := *snap
			cp.Items = append([]SnapshotItem(nil), snap.Items...)
			snaps = append(snaps, &cp)
		}
	}
	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].SnapshotDate.Before(snaps[j].SnapshotDate)
	})
	return snaps, nil
}

func (r *InMemoryRepository) GetByOwner(
	ctx context.Context,
	snapshotID string,
	userID string,
) (*Snapshot, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	snap, ok := r.snaps[snapshotID]
	if !ok || snap.UserID != userID {
		return nil, ErrNotFound
	}
	cp := *snap
	cp.Items = append([]SnapshotItem(nil), snap.Items...)
	return &cp, nil
}
