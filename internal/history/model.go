package history

import "time"

// SnapshotItem is a frozen per-item summary at approval time.
type SnapshotItem struct {
	Name          string  `json:"name"`
	OriginalPrice float64 `json:"original_price"`
	ApprovedPrice float64 `json:"approved_price"`
	FoodCost      float64 `json:"food_cost"`
	Profit        float64 `json:"profit"`
	Decision      string  `json:"decision"`
}

// Snapshot is an immutable record of a menu's approved economics at one
// point in time. It is created exactly once per approval pass and never
// mutated afterward; the repository exposes no update or delete.
type Snapshot struct {
	ID            string         `json:"id"`
	MenuJobID     string         `json:"menu_job_id"`
	UserID        string         `json:"user_id"`
	MenuName      string         `json:"menu_name"`
	SnapshotDate  time.Time      `json:"snapshot_date"`
	TotalItems    int            `json:"total_items"`
	TotalRevenue  float64        `json:"total_revenue"`
	TotalFoodCost float64        `json:"total_food_cost"`
	TotalProfit   float64        `json:"total_profit"`
	ProfitMargin  float64        `json:"profit_margin"`
	Items         []SnapshotItem `json:"items"`
}
