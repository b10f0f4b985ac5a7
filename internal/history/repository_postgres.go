package history

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, snap *Snapshot) error {
	items, err := json.Marshal(snap.Items)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO price_snapshots (
			id, menu_job_id, user_id, menu_name, snapshot_date,
			total_items, total_revenue, total_food_cost, total_profit,
			profit_margin, items
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		snap.ID, snap.MenuJobID, snap.UserID, snap.MenuName,
		snap.SnapshotDate, snap.TotalItems, snap.TotalRevenue,
		snap.TotalFoodCost, snap.TotalProfit, snap.ProfitMargin, items,
	)
	return err
}

func (r *PostgresRepository) ListByOwner(
	ctx context.Context,
	userID string,
) ([]*Snapshot, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, menu_job_id, user_id, menu_name, snapshot_date,
		       total_items, total_revenue, total_food_cost, total_profit,
		       profit_margin, items
		FROM price_snapshots
		WHERE user_id = $1
		ORDER BY snapshot_date ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

func (r *PostgresRepository) GetByOwner(
	ctx context.Context,
	snapshotID string,
	userID string,
) (*Snapshot, error) {

	row := r.db.QueryRow(ctx, `
		SELECT id, menu_job_id, user_id, menu_name, snapshot_date,
		       total_items, total_revenue, total_food_cost, total_profit,
		       profit_margin, items
		FROM price_snapshots
		WHERE id = $1
		  AND user_id = $2
	`, snapshotID, userID)

	snap, err := scanSnapshot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return snap, nil
}

func scanSnapshot(row pgx.Row) (*Snapshot, error) {
	var (
		snap      Snapshot
		itemsJSON []byte
	)

	if err := row.Scan(
		&snap.ID, &snap.MenuJobID, &snap.UserID, &snap.MenuName,
		&snap.SnapshotDate, &snap.TotalItems, &snap.TotalRevenue,
		&snap.TotalFoodCost, &snap.TotalProfit, &snap.ProfitMargin,
		&itemsJSON,
	); err != nil {
		return nil, err
	}

	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &snap.Items); err != nil {
			return nil, err
		}
	}
	return &snap, nil
}
