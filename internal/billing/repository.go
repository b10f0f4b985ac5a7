package billing

import (
	"context"
	"errors"
)

var (
	ErrSessionNotFound      = errors.New("billing session not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// Repository persists checkout sessions and subscriptions.
type Repository interface {
	CreateSession(ctx context.Context, s *Session) error
	GetSessionByOwner(ctx context.Context, sessionID, userID string) (*Session, error)
	UpdateSession(ctx context.Context, s *Session) error

	// MarkCredited flips the credited flag only if it is still unset.
	// Returns false when another poll already claimed the grant.
	MarkCredited(ctx context.Context, sessionID string) (bool, error)

	UpsertSubscription(ctx context.Context, sub *Subscription) error
	GetSubscriptionByUser(ctx context.Context, userID string) (*Subscription, error)
	CancelSubscription(ctx context.Context, userID string) error
}
