package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/menu"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/pricing"
)

var ErrNothingApproved = errors.New("no approved items to snapshot")

// Recorder freezes a job's approved pricing state. It satisfies
// menu.SnapshotRecorder.
type Recorder struct {
	repo Repository
}

func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

// Record builds one immutable snapshot from the job's approved items.
// Items without an approved price are omitted, not recorded as zero.
func (r *Recorder) Record(ctx context.Context, job *menu.MenuJob) (string, error) {
	var items []SnapshotItem
	for _, item := range job.Items {
		if item.ApprovedPrice == nil {
			continue
		}
		items = append(items, SnapshotItem{
			Name:          item.Name,
			OriginalPrice: item.CurrentPrice,
			ApprovedPrice: *item.ApprovedPrice,
			FoodCost:      item.FoodCost,
			Profit:        *item.ApprovedPrice - item.FoodCost,
			Decision:      string(item.PriceDecision),
		})
	}

	if len(items) == 0 {
		return "", ErrNothingApproved
	}

	snap := &Snapshot{
		ID:            uuid.New().String(),
		MenuJobID:     job.ID,
		UserID:        job.UserID,
		MenuName:      job.MenuName,
		SnapshotDate:  time.Now().UTC(),
		TotalItems:    len(items),
		TotalRevenue:  job.TotalRevenue,
		TotalFoodCost: job.TotalFoodCost,
		TotalProfit:   job.TotalProfit,
		ProfitMargin:  pricing.Margin(job.TotalProfit, job.TotalRevenue),
	}
	snap.Items = items

	if err := r.repo.Insert(ctx, snap); err != nil {
		return "", err
	}
	return snap.ID, nil
}
