package feedback

import (
	"context"
	"sort"
	"sync"
)

type InMemoryRepository struct {
	mu      sync.Mutex
	entries []*Feedback
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Insert(_ context.Context, f *Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *f
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *InMemoryRepository) ListAll(_ context.Context) ([]*Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Feedback, 0, len(r.entries))
	for _, f := range r.entries {
		cp := *f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
