package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/core"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password, role, credits)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Name, user.Email, user.Password, user.Role, user.Credits)
	return err
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists int
	err := r.db.QueryRow(ctx, `
		SELECT 1 FROM users WHERE email = $1 LIMIT 1
	`, email).Scan(&exists)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findBy(ctx, `WHERE email = $1`, email)
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, userID string) (*User, error) {
	return r.findBy(ctx, `WHERE id = $1`, userID)
}

func (r *PostgresUserRepository) findBy(ctx context.Context, where string, arg any) (*User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, password, role, credits, created_at
		FROM users `+where, arg)

	user := &User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.Role, &user.Credits, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *PostgresUserRepository) ListAll(ctx context.Context) ([]*User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, password, role, credits, created_at
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Password,
			&user.Role, &user.Credits, &user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepository) Delete(ctx context.Context, userID string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// AdjustCredits applies the delta atomically; the WHERE guard keeps a
// debit from ever pushing the balance negative.
func (r *PostgresUserRepository) AdjustCredits(ctx context.Context, userID string, delta int) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE users
		SET credits = credits + $1
		WHERE id = $2
		  AND credits + $1 >= 0
	`, delta, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		err := r.db.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)
		`, userID).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return ErrUserNotFound
		}
		return core.ErrInsufficientCredits
	}
	return nil
}

func (r *PostgresUserRepository) GetCredits(ctx context.Context, userID string) (int, error) {
	var credits int
	err := r.db.QueryRow(ctx, `
		SELECT credits FROM users WHERE id = $1
	`, userID).Scan(&credits)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return credits, nil
}
