package menu

import (
	"context"
	"errors"
	"math"
	"testing"
)

type fakeRecorder struct {
	calls int
	last  *MenuJob
}

func (f *fakeRecorder) Record(_ context.Context, job *MenuJob) (string, error) {
	f.calls++
	f.last = job
	return "snapshot-1", nil
}

func approvalFixture(t *testing.T, repo Repository) *MenuJob {
	t.Helper()

	job := &MenuJob{
		ID:     "job-1",
		UserID: "user-1",
		Status: StatusCompleted,
		Items: []MenuItem{
			{ID: "item-1", Name: "Burger", CurrentPrice: 20.00, FoodCost: 6.00, SuggestedPrice: 20.00},
			{ID: "item-2", Name: "Salad", CurrentPrice: 10.00, FoodCost: 3.00, SuggestedPrice: 10.00},
			{ID: "item-3", Name: "Fries", CurrentPrice: 5.00, FoodCost: 1.50, SuggestedPrice: 5.00},
		},
	}
	if err := repo.Create(context.Background(), job); err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	return job
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestApprovePricesDecisions(t *testing.T) {
	repo := NewInMemoryRepository()
	recorder := &fakeRecorder{}
	service := NewService(repo, nil, nil, recorder, nil)
	approvalFixture(t, repo)

	custom := 7.25
	job, snapshotID, err := service.ApprovePrices(context.Background(), "job-1", "user-1", []ApprovalRequest{
		{ItemID: "item-1", Decision: DecisionMaintain},
		{ItemID: "item-2", Decision: DecisionDecrease},
		{ItemID: "item-3", Decision: DecisionCustom, CustomPrice: &custom},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if job.Status != StatusApproved {
		t.Errorf("expected status approved, got %s", job.Status)
	}
	if snapshotID != "snapshot-1" {
		t.Errorf("expected snapshot id, got %q", snapshotID)
	}
	if recorder.calls != 1 {
		t.Errorf("expected one snapshot, got %d", recorder.calls)
	}

	// maintain keeps the current price
	if !almostEqual(*job.Items[0].ApprovedPrice, 20.00) {
		t.Errorf("maintain: got %.2f", *job.Items[0].ApprovedPrice)
	}
	// decrease is 90% of the suggested price
	if !almostEqual(*job.Items[1].ApprovedPrice, 9.00) {
		t.Errorf("decrease: got %.2f", *job.Items[1].ApprovedPrice)
	}
	// custom uses the caller's price, rounded
	if !almostEqual(*job.Items[2].ApprovedPrice, 7.25) {
		t.Errorf("custom: got %.2f", *job.Items[2].ApprovedPrice)
	}

	// profit recomputed from the approved price
	if !almostEqual(job.Items[0].ProfitPerPlate, 14.00) {
		t.Errorf("profit: got %.2f", job.Items[0].ProfitPerPlate)
	}

	wantRevenue := 20.00 + 9.00 + 7.25
	if !almostEqual(job.TotalRevenue, wantRevenue) {
		t.Errorf("total revenue: got %.2f want %.2f", job.TotalRevenue, wantRevenue)
	}
	wantProfit := wantRevenue - (6.00 + 3.00 + 1.50)
	if !almostEqual(job.TotalProfit, wantProfit) {
		t.Errorf("total profit: got %.2f want %.2f", job.TotalProfit, wantProfit)
	}
}

func TestApprovePricesIncreaseUsesSuggested(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil, nil, nil)

	job := &MenuJob{
		ID:     "job-1",
		UserID: "user-1",
		Status: StatusCompleted,
		Items: []MenuItem{
			{ID: "item-1", Name: "Curry", CurrentPrice: 12.00, FoodCost: 5.00, SuggestedPrice: 16.67},
		},
	}
	if err := repo.Create(context.Background(), job); err != nil {
		t.Fatalf("create fixture: %v", err)
	}

	out, _, err := service.ApprovePrices(context.Background(), "job-1", "user-1", []ApprovalRequest{
		{ItemID: "item-1", Decision: DecisionIncrease},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(*out.Items[0].ApprovedPrice, 16.67) {
		t.Errorf("increase: got %.2f", *out.Items[0].ApprovedPrice)
	}
}

func TestApprovePricesPartialApproval(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil, nil, nil)
	approvalFixture(t, repo)

	ctx := context.Background()

	// First pass decides only one item.
	job, _, err := service.ApprovePrices(ctx, "job-1", "user-1", []ApprovalRequest{
		{ItemID: "item-1", Decision: DecisionMaintain},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Items[1].ApprovedPrice != nil {
		t.Error("undecided item should have no approved price")
	}
	if !almostEqual(job.TotalRevenue, 20.00) {
		t.Errorf("aggregates should cover decided items only, got %.2f", job.TotalRevenue)
	}

	// Second pass decides another; the first item's approval survives.
	job, _, err = service.ApprovePrices(ctx, "job-1", "user-1", []ApprovalRequest{
		{ItemID: "item-2", Decision: DecisionMaintain},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Items[0].ApprovedPrice == nil || !almostEqual(*job.Items[0].ApprovedPrice, 20.00) {
		t.Error("earlier approval should survive a later pass")
	}
	if !almostEqual(job.TotalRevenue, 30.00) {
		t.Errorf("aggregates should include both passes, got %.2f", job.TotalRevenue)
	}
}

func TestApprovePricesReapprovalRecordsNewSnapshot(t *testing.T) {
	repo := NewInMemoryRepository()
	recorder := &fakeRecorder{}
	service := NewService(repo, nil, nil, recorder, nil)
	approvalFixture(t, repo)

	ctx := context.Background()
	reqs := []ApprovalRequest{{ItemID: "item-1", Decision: DecisionMaintain}}

	if _, _, err := service.ApprovePrices(ctx, "job-1", "user-1", reqs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := service.ApprovePrices(ctx, "job-1", "user-1", reqs); err != nil {
		t.Fatalf("re-approval should be allowed: %v", err)
	}
	if recorder.calls != 2 {
		t.Errorf("expected two snapshots, got %d", recorder.calls)
	}
}

func TestApprovePricesValidation(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil, nil, nil)
	approvalFixture(t, repo)

	ctx := context.Background()

	if _, _, err := service.ApprovePrices(ctx, "job-1", "user-1", nil); !errors.Is(err, ErrNoDecisions) {
		t.Errorf("expected ErrNoDecisions, got %v", err)
	}

	_, _, err := service.ApprovePrices(ctx, "job-1", "user-1", []ApprovalRequest{
		{ItemID: "ghost", Decision: DecisionMaintain},
	})
	if err == nil {
		t.Error("expected unknown item to fail")
	}

	_, _, err = service.ApprovePrices(ctx, "job-1", "user-1", []ApprovalRequest{
		{ItemID: "item-1", Decision: DecisionCustom},
	})
	if !errors.Is(err, ErrCustomPriceMissing) {
		t.Errorf("expected ErrCustomPriceMissing, got %v", err)
	}

	_, _, err = service.ApprovePrices(ctx, "job-1", "user-1", []ApprovalRequest{
		{ItemID: "item-1", Decision: Decision("double")},
	})
	if err == nil {
		t.Error("expected invalid decision to fail")
	}

	// A valid entry ahead of a bad one must not be applied either.
	_, _, err = service.ApprovePrices(ctx, "job-1", "user-1", []ApprovalRequest{
		{ItemID: "item-1", Decision: DecisionMaintain},
		{ItemID: "ghost", Decision: DecisionMaintain},
	})
	if err == nil {
		t.Error("expected mixed request with unknown item to fail")
	}

	// Failed validation must leave the stored job byte-for-byte alone.
	job, err2 := repo.GetByOwner(ctx, "job-1", "user-1")
	if err2 != nil {
		t.Fatalf("unexpected error: %v", err2)
	}
	if job.Status != StatusCompleted {
		t.Errorf("status should be unchanged after failed approval, got %s", job.Status)
	}
	for _, item := range job.Items {
		if item.ApprovedPrice != nil {
			t.Errorf("item %s: approved price leaked into store: %.2f", item.ID, *item.ApprovedPrice)
		}
		if item.PriceDecision != "" {
			t.Errorf("item %s: decision leaked into store: %q", item.ID, item.PriceDecision)
		}
	}
	if job.TotalRevenue != 0 || job.TotalProfit != 0 {
		t.Errorf("aggregates leaked into store: revenue=%.2f profit=%.2f", job.TotalRevenue, job.TotalProfit)
	}
}

func TestApprovePricesRejectsWrongStatus(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil, nil, nil)

	job := &MenuJob{
		ID:     "job-1",
		UserID: "user-1",
		Status: StatusPending,
		Items:  []MenuItem{{ID: "item-1", Name: "Soup", CurrentPrice: 8, FoodCost: 2}},
	}
	if err := repo.Create(context.Background(), job); err != nil {
		t.Fatalf("create fixture: %v", err)
	}

	_, _, err := service.ApprovePrices(context.Background(), "job-1", "user-1", []ApprovalRequest{
		{ItemID: "item-1", Decision: DecisionMaintain},
	})
	if err == nil {
		t.Error("expected approval of a pending job to fail")
	}
}

func TestApprovePricesOwnershipBlind(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil, nil, nil)
	approvalFixture(t, repo)

	_, _, err := service.ApprovePrices(context.Background(), "job-1", "intruder", []ApprovalRequest{
		{ItemID: "item-1", Decision: DecisionMaintain},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign job, got %v", err)
	}
}
