package db

import (
	"context"
	"time"

	logx "github.com/billysysco04-bit/BHdesignsbyBILLY/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres(dsn string) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logx.Fatal().Err(err).Msg("invalid DATABASE_URL")
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to create connection pool")
	}

	if err := pool.Ping(context.Background()); err != nil {
		logx.Fatal().Err(err).Msg("postgres connection failed")
	}

	logx.Info().Msg("connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		logx.Fatal().Err(err).Msg("failed to initialize schema")
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		// -------------------------------
		// USERS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'USER',
			credits INTEGER NOT NULL DEFAULT 3,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// MENU JOBS
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS menu_jobs (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			menu_name VARCHAR(255) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			location VARCHAR(255) NOT NULL DEFAULT '',
			items JSONB NOT NULL DEFAULT '[]',
			total_revenue DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_food_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_profit DOUBLE PRECISION NOT NULL DEFAULT 0,
			object_key VARCHAR(500) NOT NULL DEFAULT '',
			failure_reason TEXT NULL,
			claimed_at TIMESTAMPTZ NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_jobs_user ON menu_jobs (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_jobs_queue ON menu_jobs (status) WHERE claimed_at IS NULL`,

		// -------------------------------
		// PRICE SNAPSHOTS (append-only)
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS price_snapshots (
			id UUID PRIMARY KEY,
			menu_job_id UUID NOT NULL,
			user_id UUID NOT NULL REFERENCES users(id),
			menu_name VARCHAR(255) NOT NULL,
			snapshot_date TIMESTAMPTZ NOT NULL,
			total_items INTEGER NOT NULL,
			total_revenue DOUBLE PRECISION NOT NULL,
			total_food_cost DOUBLE PRECISION NOT NULL,
			total_profit DOUBLE PRECISION NOT NULL,
			profit_margin DOUBLE PRECISION NOT NULL,
			items JSONB NOT NULL DEFAULT '[]'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_price_snapshots_user ON price_snapshots (user_id, snapshot_date)`,

		// -------------------------------
		// BILLING
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS billing_sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			kind VARCHAR(50) NOT NULL,
			ref_id VARCHAR(100) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			checkout_url VARCHAR(500) NOT NULL DEFAULT '',
			credited BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS subscriptions (
			id UUID PRIMARY KEY,
			user_id UUID UNIQUE NOT NULL REFERENCES users(id),
			plan_id VARCHAR(100) NOT NULL,
			status VARCHAR(50) NOT NULL,
			current_period_end TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// FEEDBACK
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS feedback (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			user_email VARCHAR(255) NOT NULL,
			category VARCHAR(50) NOT NULL,
			message TEXT NOT NULL,
			rating INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// RESTAURANT PROFILES
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS restaurant_profiles (
			user_id UUID PRIMARY KEY REFERENCES users(id),
			restaurant_name VARCHAR(255) NOT NULL,
			cuisine_type VARCHAR(100) NOT NULL DEFAULT '',
			location VARCHAR(255) NOT NULL DEFAULT '',
			price_range VARCHAR(10) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	logx.Info().Msg("schema initialized")
	return nil
}
