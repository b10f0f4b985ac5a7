package core

import (
	"context"
	"errors"
)

// ErrInsufficientCredits is returned when a debit would take a balance
// below zero. Handlers translate it to a payment-required response.
var ErrInsufficientCredits = errors.New("insufficient credits")

// CreditLedger is the narrow billing surface other features depend on.
// Menu uploads debit one credit; purchases and subscriptions credit it.
type CreditLedger interface {
	Debit(ctx context.Context, userID string, amount int) error
	Credit(ctx context.Context, userID string, amount int) error
	Balance(ctx context.Context, userID string) (int, error)
}
