package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/pricing"
)

var (
	ErrNoDecisions        = errors.New("at least one pricing decision is required")
	ErrCustomPriceMissing = errors.New("custom decision requires a custom price")
)

// ApprovePrices applies the owner's per-item decisions, recomputes item
// profits and job aggregates, transitions the job to approved, and records
// an immutable snapshot. Partial approval is allowed: items without a
// matching request keep their prior decision and approved price.
//
// A custom decision without a price and a request referencing an unknown
// item id are both explicit validation errors rather than silent skips.
func (s *Service) ApprovePrices(
	ctx context.Context,
	jobID string,
	userID string,
	reqs []ApprovalRequest,
) (*MenuJob, string, error) {

	if len(reqs) == 0 {
		return nil, "", ErrNoDecisions
	}

	job, err := s.repo.GetByOwner(ctx, jobID, userID)
	if err != nil {
		return nil, "", err
	}

	// Validate the edge before touching any item.
	next, err := job.Status.Transition(StatusApproved)
	if err != nil {
		return nil, "", err
	}

	// Resolve every request before touching any item, so one bad entry
	// cannot leave a half-applied approval behind.
	type resolved struct {
		item     *MenuItem
		price    float64
		decision Decision
	}
	applies := make([]resolved, 0, len(reqs))
	for _, req := range reqs {
		item := job.Item(req.ItemID)
		if item == nil {
			return nil, "", fmt.Errorf("item %s: approval references an unknown item", req.ItemID)
		}

		var approved float64
		switch req.Decision {
		case DecisionMaintain:
			approved = item.CurrentPrice
		case DecisionIncrease:
			approved = item.SuggestedPrice
		case DecisionDecrease:
			approved = pricing.DecreasedPrice(item.SuggestedPrice)
		case DecisionCustom:
			if req.CustomPrice == nil {
				return nil, "", fmt.Errorf("item %s: %w", req.ItemID, ErrCustomPriceMissing)
			}
			approved = pricing.Round2(*req.CustomPrice)
		default:
			return nil, "", fmt.Errorf("item %s: invalid decision %q", req.ItemID, req.Decision)
		}

		applies = append(applies, resolved{item: item, price: approved, decision: req.Decision})
	}

	for _, a := range applies {
		price := a.price
		a.item.ApprovedPrice = &price
		a.item.PriceDecision = a.decision
		a.item.ProfitPerPlate = price - a.item.FoodCost
	}

	// Aggregates cover every item with an approved price, including ones
	// approved in an earlier partial pass. Undecided items are excluded.
	job.TotalRevenue = 0
	job.TotalFoodCost = 0
	job.TotalProfit = 0
	for idx := range job.Items {
		item := &job.Items[idx]
		if item.ApprovedPrice == nil {
			continue
		}
		job.TotalRevenue += *item.ApprovedPrice
		job.TotalFoodCost += item.FoodCost
		job.TotalProfit += *item.ApprovedPrice - item.FoodCost
	}

	job.Status = next

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, "", err
	}

	snapshotID := ""
	if s.recorder != nil {
		snapshotID, err = s.recorder.Record(ctx, job)
		if err != nil {
			return nil, "", err
		}
	}

	return job, snapshotID, nil
}
