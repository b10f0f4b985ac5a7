package profile

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	profiles map[string]*Profile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{profiles: make(map[string]*Profile)}
}

func (r *InMemoryRepository) Upsert(_ context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

func (r *InMemoryRepository) GetByUser(_ context.Context, userID string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}
