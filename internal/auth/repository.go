package auth

import (
	"context"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, userID string) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)
	Delete(ctx context.Context, userID string) error
	Count(ctx context.Context) (int, error)

	// Credit balance bookkeeping. AdjustCredits fails without applying
	// anything when the delta would take the balance below zero.
	AdjustCredits(ctx context.Context, userID string, delta int) error
	GetCredits(ctx context.Context, userID string) (int, error)
}
