package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Upsert(ctx context.Context, p *Profile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO restaurant_profiles
			(user_id, restaurant_name, cuisine_type, location, price_range, description, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET restaurant_name = EXCLUDED.restaurant_name,
		    cuisine_type = EXCLUDED.cuisine_type,
		    location = EXCLUDED.location,
		    price_range = EXCLUDED.price_range,
		    description = EXCLUDED.description,
		    updated_at = EXCLUDED.updated_at
	`, p.UserID, p.RestaurantName, p.CuisineType, p.Location, p.PriceRange, p.Description, p.UpdatedAt)
	return err
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID string) (*Profile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT user_id, restaurant_name, cuisine_type, location, price_range, description, updated_at
		FROM restaurant_profiles
		WHERE user_id = $1
	`, userID)

	var p Profile
	err := row.Scan(
		&p.UserID, &p.RestaurantName, &p.CuisineType, &p.Location,
		&p.PriceRange, &p.Description, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
