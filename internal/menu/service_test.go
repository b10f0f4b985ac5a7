package menu

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/core"
)

type fakeStorage struct {
	keys []string
	err  error
}

func (f *fakeStorage) Upload(_ context.Context, key string, _ multipart.File) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example.test/" + key, nil
}

type fakeLedger struct {
	balances map[string]int
}

func (f *fakeLedger) Debit(_ context.Context, userID string, amount int) error {
	if f.balances[userID] < amount {
		return core.ErrInsufficientCredits
	}
	f.balances[userID] -= amount
	return nil
}

func (f *fakeLedger) Credit(_ context.Context, userID string, amount int) error {
	f.balances[userID] += amount
	return nil
}

func (f *fakeLedger) Balance(_ context.Context, userID string) (int, error) {
	return f.balances[userID], nil
}

type fakeFile struct {
	*bytes.Reader
}

func (fakeFile) Close() error { return nil }

func newFakeFile() multipart.File {
	return fakeFile{bytes.NewReader([]byte("menu bytes"))}
}

func TestUploadDebitsOneCredit(t *testing.T) {
	repo := NewInMemoryRepository()
	storage := &fakeStorage{}
	ledger := &fakeLedger{balances: map[string]int{"user-1": 2}}
	service := NewService(repo, storage, ledger, nil, nil)

	ctx := context.Background()
	job, err := service.Upload(ctx, "user-1", newFakeFile(), "dinner.pdf", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if job.Status != StatusPending {
		t.Errorf("expected pending, got %s", job.Status)
	}
	if job.MenuName != "dinner" {
		t.Errorf("menu name should default to the filename, got %q", job.MenuName)
	}
	if ledger.balances["user-1"] != 1 {
		t.Errorf("expected 1 credit left, got %d", ledger.balances["user-1"])
	}
	if len(storage.keys) != 1 || !strings.HasPrefix(storage.keys[0], "menus/user-1/") {
		t.Errorf("unexpected object key: %v", storage.keys)
	}
	if !strings.HasSuffix(storage.keys[0], ".pdf") {
		t.Errorf("object key should keep the extension: %v", storage.keys)
	}
}

func TestUploadWithoutCredits(t *testing.T) {
	repo := NewInMemoryRepository()
	ledger := &fakeLedger{balances: map[string]int{"user-1": 0}}
	service := NewService(repo, &fakeStorage{}, ledger, nil, nil)

	_, err := service.Upload(context.Background(), "user-1", newFakeFile(), "dinner.pdf", "")
	if !errors.Is(err, core.ErrInsufficientCredits) {
		t.Fatalf("expected ErrInsufficientCredits, got %v", err)
	}

	count, _ := repo.Count(context.Background())
	if count != 0 {
		t.Error("no job should exist after a failed upload")
	}
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	ledger := &fakeLedger{balances: map[string]int{"user-1": 5}}
	service := NewService(NewInMemoryRepository(), &fakeStorage{}, ledger, nil, nil)

	_, err := service.Upload(context.Background(), "user-1", newFakeFile(), "menu.exe", "")
	if err == nil {
		t.Fatal("expected unsupported extension to fail")
	}
	if ledger.balances["user-1"] != 5 {
		t.Error("validation failure must not burn a credit")
	}
}

func TestRequestAnalysisValidatesTransition(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil, nil, nil, nil)

	ctx := context.Background()
	job := &MenuJob{ID: "job-1", UserID: "user-1", Status: StatusPending}
	if err := repo.Create(ctx, job); err != nil {
		t.Fatalf("create fixture: %v", err)
	}

	if err := service.RequestAnalysis(ctx, "job-1", "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.GetByOwner(ctx, "job-1", "user-1")
	if stored.Status != StatusAnalyzing {
		t.Errorf("expected analyzing, got %s", stored.Status)
	}

	// analyzing -> analyzing is not a legal edge
	if err := service.RequestAnalysis(ctx, "job-1", "user-1"); err == nil {
		t.Error("expected re-queue of an analyzing job to fail")
	}
}

type fakeEstimator struct {
	observations map[string][]CompetitorPrice
	gotLocation  string
}

func (f *fakeEstimator) EstimateCompetitors(
	_ context.Context,
	location string,
	_ []MenuItem,
) (map[string][]CompetitorPrice, error) {
	f.gotLocation = location
	return f.observations, nil
}

func TestAnalyzeCompetitorsMergesByName(t *testing.T) {
	repo := NewInMemoryRepository()
	estimator := &fakeEstimator{observations: map[string][]CompetitorPrice{
		"Burger": {{RestaurantName: "Grill House", Price: 19.5, Distance: "0.4 mi"}},
	}}
	service := NewService(repo, nil, nil, nil, estimator)

	ctx := context.Background()
	job := &MenuJob{
		ID: "job-1", UserID: "user-1", Status: StatusCompleted, Location: "Austin, TX",
		Items: []MenuItem{
			{ID: "item-1", Name: "Burger", CurrentPrice: 20},
			{ID: "item-2", Name: "Salad", CurrentPrice: 10},
		},
	}
	if err := repo.Create(ctx, job); err != nil {
		t.Fatalf("create fixture: %v", err)
	}

	out, err := service.AnalyzeCompetitors(ctx, "job-1", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if estimator.gotLocation != "Austin, TX" {
		t.Errorf("estimator should receive the job location, got %q", estimator.gotLocation)
	}
	if len(out.Items[0].Competitors) != 1 {
		t.Errorf("matched item should carry observations: %+v", out.Items[0].Competitors)
	}
	if out.Items[1].Competitors != nil {
		t.Errorf("unmatched item should stay empty: %+v", out.Items[1].Competitors)
	}
}

func TestNormalizeExtracted(t *testing.T) {
	raw := []ExtractedItem{
		{Name: "Burger", CurrentPrice: 20, FoodCost: 6},
		{Name: "Free Sample", CurrentPrice: 0, FoodCost: 0},
	}

	items := NormalizeExtracted(raw)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID == "" || items[1].ID == "" {
		t.Error("every item gets an id")
	}
	if items[0].SuggestedPrice != 20.00 {
		t.Errorf("suggested price: got %.2f", items[0].SuggestedPrice)
	}
	if items[0].ProfitPerPlate != 14.00 {
		t.Errorf("profit: got %.2f", items[0].ProfitPerPlate)
	}
	// zero food cost keeps the current price as the suggestion
	if items[1].SuggestedPrice != 0 {
		t.Errorf("zero-cost item suggestion: got %.2f", items[1].SuggestedPrice)
	}
}
