package billing

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu            sync.Mutex
	sessions      map[string]*Session
	subscriptions map[string]*Subscription // keyed by user ID
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		sessions:      make(map[string]*Session),
		subscriptions: make(map[string]*Subscription),
	}
}

func (r *InMemoryRepository) CreateSession(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetSessionByOwner(_ context.Context, sessionID, userID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok || s.UserID != userID {
		return nil, ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *InMemoryRepository) UpdateSession(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions[s.ID]
	if !ok {
		return ErrSessionNotFound
	}
	stored.Status = s.Status
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *InMemoryRepository) MarkCredited(_ context.Context, sessionID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return false, ErrSessionNotFound
	}
	if s.Credited {
		return false, nil
	}
	s.Credited = true
	s.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *InMemoryRepository) UpsertSubscription(_ context.Context, sub *Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *sub
	r.subscriptions[sub.UserID] = &cp
	return nil
}

func (r *InMemoryRepository) GetSubscriptionByUser(_ context.Context, userID string) (*Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subscriptions[userID]
	if !ok {
		return nil, ErrSubscriptionNotFound
	}
	cp := *sub
	return &cp, nil
}

func (r *InMemoryRepository) CancelSubscription(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subscriptions[userID]
	if !ok || sub.Status != SubscriptionActive {
		return ErrSubscriptionNotFound
	}
	sub.Status = SubscriptionCanceled
	return nil
}
