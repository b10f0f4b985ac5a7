package analytics

// TrendPoint is one step of the profit trend series.
type TrendPoint struct {
	Date   string  `json:"date"`
	Profit float64 `json:"profit"`
	Menu   string  `json:"menu"`
}

// RevenuePoint is one step of the revenue/food-cost trend series.
type RevenuePoint struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	FoodCost float64 `json:"food_cost"`
}

// TopItem is an item ranked by cumulative profit across snapshots.
type TopItem struct {
	Name        string  `json:"name"`
	TotalProfit float64 `json:"total_profit"`
	Count       int     `json:"count"`
}

// Summary aggregates an owner's entire snapshot history.
type Summary struct {
	TotalSnapshots       int            `json:"total_snapshots"`
	TotalMenusAnalyzed   int            `json:"total_menus_analyzed"`
	TotalItemsPriced     int            `json:"total_items_priced"`
	TotalProfitGenerated float64        `json:"total_profit_generated"`
	AvgProfitMargin      float64        `json:"avg_profit_margin"`
	ProfitTrend          []TrendPoint   `json:"profit_trend"`
	RevenueTrend         []RevenuePoint `json:"revenue_trend"`
	TopPerformingItems   []TopItem      `json:"top_performing_items"`
}

// ComparisonSummary diffs the earliest against the latest snapshot.
type ComparisonSummary struct {
	Period           string  `json:"period"`
	ProfitChange     float64 `json:"profit_change"`
	ProfitChangePct  float64 `json:"profit_change_pct"`
	RevenueChange    float64 `json:"revenue_change"`
	RevenueChangePct float64 `json:"revenue_change_pct"`
	MarginChange     float64 `json:"margin_change"`
}

// ItemChange is the per-item delta for items present in both snapshots.
type ItemChange struct {
	Name         string  `json:"name"`
	OldPrice     float64 `json:"old_price"`
	NewPrice     float64 `json:"new_price"`
	PriceChange  float64 `json:"price_change"`
	ProfitChange float64 `json:"profit_change"`
}

// Comparison is the full result of comparing two or more snapshots.
type Comparison struct {
	Summary     ComparisonSummary `json:"summary"`
	ItemChanges []ItemChange      `json:"item_changes"`
}
