package menu

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// CREATE
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, job *MenuJob) error {
	items, err := json.Marshal(job.Items)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO menu_jobs (
			id, user_id, menu_name, status, location, items,
			total_revenue, total_food_cost, total_profit,
			object_key, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
	`,
		job.ID, job.UserID, job.MenuName, string(job.Status), job.Location,
		items, job.TotalRevenue, job.TotalFoodCost, job.TotalProfit,
		job.ObjectKey,
	)
	return err
}

// --------------------------------------------------
// READ (OWNER-SCOPED)
// --------------------------------------------------
func (r *PostgresRepository) GetByOwner(
	ctx context.Context,
	jobID string,
	userID string,
) (*MenuJob, error) {

	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, menu_name, status, location, items,
		       total_revenue, total_food_cost, total_profit,
		       object_key, failure_reason, created_at, updated_at
		FROM menu_jobs
		WHERE id = $1
		  AND user_id = $2
	`, jobID, userID)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *PostgresRepository) ListByOwner(
	ctx context.Context,
	userID string,
) ([]*MenuJob, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, menu_name, status, location, items,
		       total_revenue, total_food_cost, total_profit,
		       object_key, failure_reason, created_at, updated_at
		FROM menu_jobs
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

// --------------------------------------------------
// UPDATE (WHOLE DOCUMENT)
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, job *MenuJob) error {
	items, err := json.Marshal(job.Items)
	if err != nil {
		return err
	}

	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_jobs
		SET menu_name = $1,
		    status = $2,
		    location = $3,
		    items = $4,
		    total_revenue = $5,
		    total_food_cost = $6,
		    total_profit = $7,
		    failure_reason = $8,
		    updated_at = now()
		WHERE id = $9
	`,
		job.MenuName, string(job.Status), job.Location, items,
		job.TotalRevenue, job.TotalFoodCost, job.TotalProfit,
		job.FailureReason, job.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteByOwner(
	ctx context.Context,
	jobID string,
	userID string,
) error {

	cmd, err := r.db.Exec(ctx, `
		DELETE FROM menu_jobs
		WHERE id = $1
		  AND user_id = $2
	`, jobID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// WORKER QUEUE
// --------------------------------------------------
func (r *PostgresRepository) MarkForAnalysis(ctx context.Context, jobID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE menu_jobs
		SET status = 'analyzing',
		    claimed_at = NULL,
		    failure_reason = NULL,
		    updated_at = now()
		WHERE id = $1
	`, jobID)
	return err
}

// ClaimNextQueued claims the oldest queued job atomically so multiple
// workers never process the same upload twice.
func (r *PostgresRepository) ClaimNextQueued(ctx context.Context) (*MenuJob, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		SELECT id, user_id, menu_name, status, location, items,
		       total_revenue, total_food_cost, total_profit,
		       object_key, failure_reason, created_at, updated_at
		FROM menu_jobs
		WHERE status = 'analyzing'
		  AND claimed_at IS NULL
		ORDER BY updated_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Nothing queued is not an error
			return nil, nil
		}
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE menu_jobs
		SET claimed_at = now()
		WHERE id = $1
	`, job.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return job, nil
}

// --------------------------------------------------
// ADMIN
// --------------------------------------------------
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*MenuJob, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, menu_name, status, location, items,
		       total_revenue, total_food_cost, total_profit,
		       object_key, failure_reason, created_at, updated_at
		FROM menu_jobs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresRepository) DeleteAny(ctx context.Context, jobID string) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM menu_jobs
		WHERE id = $1
	`, jobID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM menu_jobs
		WHERE user_id = $1
	`, userID)
	return err
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_jobs`).Scan(&n)
	return n, err
}

// --------------------------------------------------
// SCAN HELPERS
// --------------------------------------------------

func scanJob(row pgx.Row) (*MenuJob, error) {
	var (
		job       MenuJob
		status    string
		itemsJSON []byte
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(
		&job.ID, &job.UserID, &job.MenuName, &status, &job.Location,
		&itemsJSON, &job.TotalRevenue, &job.TotalFoodCost, &job.TotalProfit,
		&job.ObjectKey, &job.FailureReason, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	job.Status = Status(status)
	job.CreatedAt = createdAt
	job.UpdatedAt = updatedAt

	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &job.Items); err != nil {
			return nil, err
		}
	}
	return &job, nil
}

func collectJobs(rows pgx.Rows) ([]*MenuJob, error) {
	var jobs []*MenuJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
