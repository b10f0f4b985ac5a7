package extraction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/menu"
)

type fakeDownloader struct {
	data map[string][]byte
	err  error
}

func (f *fakeDownloader) Download(_ context.Context, key string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data[key], nil
}

type fakeParser struct {
	items    []menu.ExtractedItem
	failures int // errors returned before succeeding
	calls    int
}

func (f *fakeParser) ParseMenu(context.Context, []byte, string) ([]menu.ExtractedItem, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("model timeout")
	}
	return f.items, nil
}

func queuedJob(t *testing.T, repo menu.Repository) *menu.MenuJob {
	t.Helper()

	job := &menu.MenuJob{
		ID:        "job-1",
		UserID:    "user-1",
		MenuName:  "Dinner Menu",
		Status:    menu.StatusPending,
		ObjectKey: "menus/user-1/file.pdf",
	}
	ctx := context.Background()
	if err := repo.Create(ctx, job); err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	if err := repo.MarkForAnalysis(ctx, job.ID); err != nil {
		t.Fatalf("queue fixture: %v", err)
	}
	return job
}

func TestProcessOneCompletesJob(t *testing.T) {
	repo := menu.NewInMemoryRepository()
	downloader := &fakeDownloader{data: map[string][]byte{
		"menus/user-1/file.pdf": []byte("%PDF fake"),
	}}
	parser := &fakeParser{items: []menu.ExtractedItem{
		{Name: "Burger", CurrentPrice: 20.00, FoodCost: 6.00},
		{Name: "Salad", CurrentPrice: 10.00, FoodCost: 3.00},
	}}

	service := NewService(repo, downloader, parser)
	queuedJob(t, repo)

	if err := service.ProcessOne(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	job, err := repo.GetByOwner(context.Background(), "job-1", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if job.Status != menu.StatusCompleted {
		t.Errorf("expected completed, got %s", job.Status)
	}
	if len(job.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(job.Items))
	}
	if job.Items[0].ID == "" {
		t.Error("normalized items must get ids")
	}
	if job.Items[0].SuggestedPrice != 20.00 {
		t.Errorf("suggested price: got %.2f", job.Items[0].SuggestedPrice)
	}
	if job.TotalRevenue != 30.00 || job.TotalFoodCost != 9.00 || job.TotalProfit != 21.00 {
		t.Errorf("totals wrong: %.2f / %.2f / %.2f",
			job.TotalRevenue, job.TotalFoodCost, job.TotalProfit)
	}
	if job.FailureReason != nil {
		t.Errorf("failure reason should be cleared, got %q", *job.FailureReason)
	}
}

func TestProcessOneEmptyQueue(t *testing.T) {
	repo := menu.NewInMemoryRepository()
	service := NewService(repo, &fakeDownloader{}, &fakeParser{})

	if err := service.ProcessOne(context.Background()); err != nil {
		t.Fatalf("empty queue is not an error, got %v", err)
	}
}

func TestProcessOneRetriesTransientFailures(t *testing.T) {
	oldDelay := retryBaseDelay
	retryBaseDelay = time.Millisecond
	defer func() { retryBaseDelay = oldDelay }()

	repo := menu.NewInMemoryRepository()
	downloader := &fakeDownloader{data: map[string][]byte{
		"menus/user-1/file.pdf": []byte("data"),
	}}
	parser := &fakeParser{
		failures: 2,
		items:    []menu.ExtractedItem{{Name: "Soup", CurrentPrice: 8, FoodCost: 2}},
	}

	service := NewService(repo, downloader, parser)
	queuedJob(t, repo)

	if err := service.ProcessOne(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parser.calls != 3 {
		t.Errorf("expected 3 attempts, got %d", parser.calls)
	}

	job, _ := repo.GetByOwner(context.Background(), "job-1", "user-1")
	if job.Status != menu.StatusCompleted {
		t.Errorf("expected completed after retry, got %s", job.Status)
	}
}

func TestProcessOneExhaustedRetriesFailsJob(t *testing.T) {
	oldDelay := retryBaseDelay
	retryBaseDelay = time.Millisecond
	defer func() { retryBaseDelay = oldDelay }()

	repo := menu.NewInMemoryRepository()
	downloader := &fakeDownloader{data: map[string][]byte{
		"menus/user-1/file.pdf": []byte("data"),
	}}
	parser := &fakeParser{failures: maxParseAttempts}

	service := NewService(repo, downloader, parser)
	queuedJob(t, repo)

	if err := service.ProcessOne(context.Background()); err != nil {
		t.Fatalf("job failure must not bubble up, got %v", err)
	}

	job, _ := repo.GetByOwner(context.Background(), "job-1", "user-1")
	if job.Status != menu.StatusPending {
		t.Errorf("failed job should return to pending, got %s", job.Status)
	}
	if job.FailureReason == nil || *job.FailureReason != "model timeout" {
		t.Errorf("failure reason not recorded: %v", job.FailureReason)
	}
}

func TestProcessOneDownloadFailureFailsJob(t *testing.T) {
	repo := menu.NewInMemoryRepository()
	downloader := &fakeDownloader{err: errors.New("object missing")}

	service := NewService(repo, downloader, &fakeParser{})
	queuedJob(t, repo)

	if err := service.ProcessOne(context.Background()); err != nil {
		t.Fatalf("job failure must not bubble up, got %v", err)
	}

	job, _ := repo.GetByOwner(context.Background(), "job-1", "user-1")
	if job.Status != menu.StatusPending || job.FailureReason == nil {
		t.Errorf("expected pending with reason, got %s / %v", job.Status, job.FailureReason)
	}
}

func TestMimeTypeFor(t *testing.T) {
	cases := map[string]string{
		"menus/u/a.pdf":  "application/pdf",
		"menus/u/a.PNG":  "image/png",
		"menus/u/a.jpeg": "image/jpeg",
		"menus/u/a.txt":  "text/plain",
		"menus/u/a":      "text/plain",
	}
	for key, want := range cases {
		if got := mimeTypeFor(key); got != want {
			t.Errorf("%s: got %s want %s", key, got, want)
		}
	}
}
