package billing

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) CreateSession(ctx context.Context, s *Session) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO billing_sessions
			(id, user_id, kind, ref_id, status, checkout_url, credited, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, s.ID, s.UserID, s.Kind, s.RefID, s.Status, s.CheckoutURL, s.Credited, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *PostgresRepository) GetSessionByOwner(ctx context.Context, sessionID, userID string) (*Session, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, kind, ref_id, status, checkout_url, credited, created_at, updated_at
		FROM billing_sessions
		WHERE id = $1 AND user_id = $2
	`, sessionID, userID)

	var s Session
	err := row.Scan(
		&s.ID, &s.UserID, &s.Kind, &s.RefID, &s.Status,
		&s.CheckoutURL, &s.Credited, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) UpdateSession(ctx context.Context, s *Session) error {
	s.UpdatedAt = time.Now().UTC()
	tag, err := r.pool.Exec(ctx, `
		UPDATE billing_sessions
		SET status = $1, updated_at = $2
		WHERE id = $3
	`, s.Status, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *PostgresRepository) MarkCredited(ctx context.Context, sessionID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE billing_sessions
		SET credited = TRUE, updated_at = now()
		WHERE id = $1 AND credited = FALSE
	`, sessionID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepository) UpsertSubscription(ctx context.Context, sub *Subscription) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO subscriptions (id, user_id, plan_id, status, current_period_end, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET plan_id = EXCLUDED.plan_id,
		    status = EXCLUDED.status,
		    current_period_end = EXCLUDED.current_period_end
	`, sub.ID, sub.UserID, sub.PlanID, sub.Status, sub.CurrentPeriodEnd, sub.CreatedAt)
	return err
}

func (r *PostgresRepository) GetSubscriptionByUser(ctx context.Context, userID string) (*Subscription, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, plan_id, status, current_period_end, created_at
		FROM subscriptions
		WHERE user_id = $1
	`, userID)

	var sub Subscription
	err := row.Scan(
		&sub.ID, &sub.UserID, &sub.PlanID, &sub.Status,
		&sub.CurrentPeriodEnd, &sub.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *PostgresRepository) CancelSubscription(ctx context.Context, userID string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE subscriptions
		SET status = $1
		WHERE user_id = $2 AND status = $3
	`, SubscriptionCanceled, userID, SubscriptionActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}
