package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger tracks grants in memory.
type fakeLedger struct {
	balances map[string]int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{balances: make(map[string]int)}
}

func (l *fakeLedger) Debit(_ context.Context, userID string, amount int) error {
	if l.balances[userID] < amount {
		return core.ErrInsufficientCredits
	}
	l.balances[userID] -= amount
	return nil
}

func (l *fakeLedger) Credit(_ context.Context, userID string, amount int) error {
	l.balances[userID] += amount
	return nil
}

func (l *fakeLedger) Balance(_ context.Context, userID string) (int, error) {
	return l.balances[userID], nil
}

func TestCheckoutCreditsUnknownPackage(t *testing.T) {
	service := NewService(NewInMemoryRepository(), FakeGateway{}, newFakeLedger())

	_, err := service.CheckoutCredits(context.Background(), "user-1", "mega-ultra")
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestSessionStatusCreditsOnce(t *testing.T) {
	ledger := newFakeLedger()
	service := NewService(NewInMemoryRepository(), FakeGateway{}, ledger)

	ctx := context.Background()
	session, err := service.CheckoutCredits(ctx, "user-1", "starter")
	require.NoError(t, err)
	require.Equal(t, SessionPending, session.Status)
	require.NotEmpty(t, session.CheckoutURL)

	// Poll twice; the fake gateway reports paid immediately.
	first, err := service.SessionStatus(ctx, "user-1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, SessionPaid, first.Status)
	assert.True(t, first.Credited)

	second, err := service.SessionStatus(ctx, "user-1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, SessionPaid, second.Status)

	balance, err := ledger.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 10, balance, "starter pack grants 10 credits exactly once")
}

func TestSessionStatusScopedToOwner(t *testing.T) {
	service := NewService(NewInMemoryRepository(), FakeGateway{}, newFakeLedger())

	ctx := context.Background()
	session, err := service.CheckoutCredits(ctx, "user-1", "starter")
	require.NoError(t, err)

	_, err = service.SessionStatus(ctx, "intruder", session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubscriptionLifecycle(t *testing.T) {
	ledger := newFakeLedger()
	service := NewService(NewInMemoryRepository(), FakeGateway{}, ledger)

	ctx := context.Background()

	_, err := service.CurrentSubscription(ctx, "user-1")
	require.ErrorIs(t, err, ErrSubscriptionNotFound)

	session, err := service.CheckoutSubscription(ctx, "user-1", "pro")
	require.NoError(t, err)

	_, err = service.SessionStatus(ctx, "user-1", session.ID)
	require.NoError(t, err)

	sub, err := service.CurrentSubscription(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "pro", sub.PlanID)
	assert.Equal(t, SubscriptionActive, sub.Status)

	balance, err := ledger.Balance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 50, balance, "pro plan grants 50 monthly credits")

	require.NoError(t, service.CancelSubscription(ctx, "user-1"))

	sub, err = service.CurrentSubscription(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, SubscriptionCanceled, sub.Status)

	err = service.CancelSubscription(ctx, "user-1")
	assert.ErrorIs(t, err, ErrSubscriptionNotFound, "double cancel has nothing to cancel")
}

func TestCheckoutSubscriptionUnknownPlan(t *testing.T) {
	service := NewService(NewInMemoryRepository(), FakeGateway{}, newFakeLedger())

	_, err := service.CheckoutSubscription(context.Background(), "user-1", "diamond")
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

// failingGateway simulates a provider that cannot be reached.
type failingGateway struct{}

func (failingGateway) CreateCheckout(context.Context, string, float64, string) (string, error) {
	return "", errors.New("provider unreachable")
}

func (failingGateway) CheckoutStatus(context.Context, string) (string, error) {
	return "", errors.New("provider unreachable")
}

func TestCheckoutFailureCreatesNoSession(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, failingGateway{}, newFakeLedger())

	session, err := service.CheckoutCredits(context.Background(), "user-1", "starter")
	assert.Error(t, err)
	assert.Nil(t, session)
}
