package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/auth"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/core"
	logx "github.com/billysysco04-bit/BHdesignsbyBILLY/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrUnknownPackage = errors.New("unknown credit package")
	ErrUnknownPlan    = errors.New("unknown subscription plan")
)

const subscriptionPeriod = 30 * 24 * time.Hour

// Ledger implements core.CreditLedger on top of the users table.
type Ledger struct {
	users auth.UserRepository
}

func NewLedger(users auth.UserRepository) *Ledger {
	return &Ledger{users: users}
}

func (l *Ledger) Debit(ctx context.Context, userID string, amount int) error {
	err := l.users.AdjustCredits(ctx, userID, -amount)
	if errors.Is(err, core.ErrInsufficientCredits) {
		return core.ErrInsufficientCredits
	}
	return err
}

func (l *Ledger) Credit(ctx context.Context, userID string, amount int) error {
	return l.users.AdjustCredits(ctx, userID, amount)
}

func (l *Ledger) Balance(ctx context.Context, userID string) (int, error) {
	return l.users.GetCredits(ctx, userID)
}

// ----- checkout orchestration -----

type Service struct {
	repo    Repository
	gateway PaymentGateway
	ledger  core.CreditLedger
}

func NewService(repo Repository, gateway PaymentGateway, ledger core.CreditLedger) *Service {
	return &Service{repo: repo, gateway: gateway, ledger: ledger}
}

func (s *Service) CheckoutCredits(ctx context.Context, userID, packageID string) (*Session, error) {
	pkg, ok := findPackage(packageID)
	if !ok {
		return nil, ErrUnknownPackage
	}

	now := time.Now().UTC()
	session := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Kind:      SessionKindCredits,
		RefID:     pkg.ID,
		Status:    SessionPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	url, err := s.gateway.CreateCheckout(
		ctx, session.ID, pkg.PriceUSD,
		fmt.Sprintf("%s (%d credits)", pkg.Name, pkg.Credits),
	)
	if err != nil {
		return nil, err
	}
	session.CheckoutURL = url

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SessionStatus polls the gateway and settles the session. Crediting is
// guarded by MarkCredited so concurrent polls grant at most once.
func (s *Service) SessionStatus(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := s.repo.GetSessionByOwner(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	if session.Status == SessionPending {
		status, err := s.gateway.CheckoutStatus(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		if status != session.Status {
			session.Status = status
			if err := s.repo.UpdateSession(ctx, session); err != nil {
				return nil, err
			}
		}
	}

	if session.Status == SessionPaid && !session.Credited {
		granted, err := s.repo.MarkCredited(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		if granted {
			if err := s.settle(ctx, session); err != nil {
				return nil, err
			}
			session.Credited = true
		}
	}

	return session, nil
}

func (s *Service) settle(ctx context.Context, session *Session) error {
	switch session.Kind {
	case SessionKindCredits:
		pkg, ok := findPackage(session.RefID)
		if !ok {
			return ErrUnknownPackage
		}
		if err := s.ledger.Credit(ctx, session.UserID, pkg.Credits); err != nil {
			return err
		}
		logx.Info().
			Str("user_id", session.UserID).
			Int("credits", pkg.Credits).
			Msg("credits purchased")
		return nil

	case SessionKindSubscription:
		plan, ok := findPlan(session.RefID)
		if !ok {
			return ErrUnknownPlan
		}
		sub := &Subscription{
			ID:               uuid.New().String(),
			UserID:           session.UserID,
			PlanID:           plan.ID,
			Status:           SubscriptionActive,
			CurrentPeriodEnd: time.Now().UTC().Add(subscriptionPeriod),
			CreatedAt:        time.Now().UTC(),
		}
		if err := s.repo.UpsertSubscription(ctx, sub); err != nil {
			return err
		}
		if err := s.ledger.Credit(ctx, session.UserID, plan.MonthlyCredits); err != nil {
			return err
		}
		logx.Info().
			Str("user_id", session.UserID).
			Str("plan", plan.ID).
			Msg("subscription activated")
		return nil

	default:
		return fmt.Errorf("unknown session kind %q", session.Kind)
	}
}

func (s *Service) CheckoutSubscription(ctx context.Context, userID, planID string) (*Session, error) {
	plan, ok := findPlan(planID)
	if !ok {
		return nil, ErrUnknownPlan
	}

	now := time.Now().UTC()
	session := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Kind:      SessionKindSubscription,
		RefID:     plan.ID,
		Status:    SessionPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	url, err := s.gateway.CreateCheckout(
		ctx, session.ID, plan.PriceUSD,
		fmt.Sprintf("%s plan (%d credits/month)", plan.Name, plan.MonthlyCredits),
	)
	if err != nil {
		return nil, err
	}
	session.CheckoutURL = url

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) CurrentSubscription(ctx context.Context, userID string) (*Subscription, error) {
	return s.repo.GetSubscriptionByUser(ctx, userID)
}

func (s *Service) CancelSubscription(ctx context.Context, userID string) error {
	return s.repo.CancelSubscription(ctx, userID)
}
