package feedback

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Insert(ctx context.Context, f *Feedback) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO feedback (id, user_id, user_email, category, message, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, f.ID, f.UserID, f.UserEmail, f.Category, f.Message, f.Rating, f.CreatedAt)
	return err
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Feedback, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, user_email, category, message, rating, created_at
		FROM feedback
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.UserEmail, &f.Category,
			&f.Message, &f.Rating, &f.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}
