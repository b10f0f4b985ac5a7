package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/history"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/pricing"
)

// ErrTooFewSnapshots is the validation error for a compare request with
// fewer than two snapshot ids. No partial computation happens.
var ErrTooFewSnapshots = errors.New("select at least 2 snapshots to compare")

const (
	trendLength   = 10
	topItemsLimit = 10
	menuNameLimit = 20
)

// Service computes read-only analytics over one owner's snapshot history.
// Results are always recomputed fresh, never cached.
type Service struct {
	snapshots history.Repository
}

func NewService(snapshots history.Repository) *Service {
	return &Service{snapshots: snapshots}
}

// --------------------------------------------------
// Summary across all snapshots
// --------------------------------------------------
func (s *Service) Summary(ctx context.Context, userID string) (*Summary, error) {
	snaps, err := s.snapshots.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ProfitTrend:        []TrendPoint{},
		RevenueTrend:       []RevenuePoint{},
		TopPerformingItems: []TopItem{},
	}

	var totalRevenue float64
	menus := make(map[string]bool)

	for _, snap := range snaps {
		summary.TotalSnapshots++
		summary.TotalItemsPriced += snap.TotalItems
		summary.TotalProfitGenerated += snap.TotalProfit
		totalRevenue += snap.TotalRevenue
		menus[snap.MenuJobID] = true
	}
	summary.TotalMenusAnalyzed = len(menus)
	summary.AvgProfitMargin = pricing.Margin(summary.TotalProfitGenerated, totalRevenue)

	// Trend series cover the last 10 snapshots, oldest first.
	trend := snaps
	if len(trend) > trendLength {
		trend = trend[len(trend)-trendLength:]
	}
	for _, snap := range trend {
		date := snap.SnapshotDate.Format("Jan 02")
		summary.ProfitTrend = append(summary.ProfitTrend, TrendPoint{
			Date:   date,
			Profit: pricing.Round2(snap.TotalProfit),
			Menu:   truncateName(snap.MenuName),
		})
		summary.RevenueTrend = append(summary.RevenueTrend, RevenuePoint{
			Date:     date,
			Revenue:  pricing.Round2(snap.TotalRevenue),
			FoodCost: pricing.Round2(snap.TotalFoodCost),
		})
	}

	summary.TopPerformingItems = topItems(snaps)

	return summary, nil
}

// topItems ranks item names by cumulative profit across all snapshots.
// Names match exactly (case-sensitive); ties keep first-appearance order.
func topItems(snaps []*history.Snapshot) []TopItem {
	totals := make(map[string]*TopItem)
	var order []string

	for _, snap := range snaps {
		for _, item := range snap.Items {
			entry, ok := totals[item.Name]
			if !ok {
				entry = &TopItem{Name: item.Name}
				totals[item.Name] = entry
				order = append(order, item.Name)
			}
			entry.TotalProfit += item.Profit
			entry.Count++
		}
	}

	ranked := make([]TopItem, 0, len(order))
	for _, name := range order {
		entry := totals[name]
		entry.TotalProfit = pricing.Round2(entry.TotalProfit)
		ranked = append(ranked, *entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalProfit > ranked[j].TotalProfit
	})

	if len(ranked) > topItemsLimit {
		ranked = ranked[:topItemsLimit]
	}
	return ranked
}

// --------------------------------------------------
// Compare two or more snapshots
// --------------------------------------------------
func (s *Service) Compare(
	ctx context.Context,
	userID string,
	snapshotIDs []string,
) (*Comparison, error) {

	if len(snapshotIDs) < 2 {
		return nil, ErrTooFewSnapshots
	}

	snaps := make([]*history.Snapshot, 0, len(snapshotIDs))
	for _, id := range snapshotIDs {
		snap, err := s.snapshots.GetByOwner(ctx, id, userID)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}

	sort.SliceStable(snaps, func(i, j int) bool {
		return snaps[i].SnapshotDate.Before(snaps[j].SnapshotDate)
	})

	earliest := snaps[0]
	latest := snaps[len(snaps)-1]

	cmp := &Comparison{
		Summary: ComparisonSummary{
			Period: fmt.Sprintf(
				"%s to %s",
				earliest.SnapshotDate.Format("Jan 02, 2006"),
				latest.SnapshotDate.Format("Jan 02, 2006"),
			),
			ProfitChange:     pricing.Round2(latest.TotalProfit - earliest.TotalProfit),
			ProfitChangePct:  pricing.PctChange(earliest.TotalProfit, latest.TotalProfit),
			RevenueChange:    pricing.Round2(latest.TotalRevenue - earliest.TotalRevenue),
			RevenueChangePct: pricing.PctChange(earliest.TotalRevenue, latest.TotalRevenue),
			MarginChange:     latest.ProfitMargin - earliest.ProfitMargin,
		},
		ItemChanges: []ItemChange{},
	}

	// Items are matched by exact name; items present in only one of the
	// two snapshots are left out of the item-level diff.
	baseline := make(map[string]history.SnapshotItem, len(earliest.Items))
	for _, item := range earliest.Items {
		baseline[item.Name] = item
	}
	for _, item := range latest.Items {
		old, ok := baseline[item.Name]
		if !ok {
			continue
		}
		cmp.ItemChanges = append(cmp.ItemChanges, ItemChange{
			Name:         item.Name,
			OldPrice:     old.ApprovedPrice,
			NewPrice:     item.ApprovedPrice,
			PriceChange:  pricing.Round2(item.ApprovedPrice - old.ApprovedPrice),
			ProfitChange: pricing.Round2(item.Profit - old.Profit),
		})
	}

	sort.SliceStable(cmp.ItemChanges, func(i, j int) bool {
		return cmp.ItemChanges[i].ProfitChange > cmp.ItemChanges[j].ProfitChange
	})

	return cmp, nil
}

// --------------------------------------------------
// Raw history list (for snapshot pickers)
// --------------------------------------------------
func (s *Service) History(ctx context.Context, userID string) ([]*history.Snapshot, error) {
	return s.snapshots.ListByOwner(ctx, userID)
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= menuNameLimit {
		return name
	}
	return string(runes[:menuNameLimit]) + "…"
}
