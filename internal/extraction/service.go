package extraction

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/menu"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/pricing"
	logx "github.com/billysysco04-bit/BHdesignsbyBILLY/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const maxParseAttempts = 3

// retryBaseDelay is a variable so tests can shrink the backoff.
var retryBaseDelay = 2 * time.Second

var menusProcessed = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "menu_extractions_total",
		Help: "Menu extraction outcomes by result",
	},
	[]string{"result"},
)

// Downloader reads an uploaded menu file back out of object storage.
type Downloader interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

// Parser turns raw menu bytes into structured items.
type Parser interface {
	ParseMenu(ctx context.Context, data []byte, mimeType string) ([]menu.ExtractedItem, error)
}

type Service struct {
	repo    menu.Repository
	storage Downloader
	parser  Parser
}

func NewService(repo menu.Repository, storage Downloader, parser Parser) *Service {
	return &Service{repo: repo, storage: storage, parser: parser}
}

// ProcessOne claims ONE queued job and processes it. An empty queue is
// not an error. Job-level failures are recorded on the job and never
// block the worker.
func (s *Service) ProcessOne(ctx context.Context) error {
	job, err := s.repo.ClaimNextQueued(ctx)
	if err != nil {
		return err
	}
	if job == nil {
		return nil
	}

	logx.Info().
		Str("job_id", job.ID).
		Str("menu", job.MenuName).
		Msg("extraction started")

	if err := s.process(ctx, job); err != nil {
		s.fail(ctx, job, err.Error())
		return nil
	}

	menusProcessed.WithLabelValues("completed").Inc()
	logx.Info().
		Str("job_id", job.ID).
		Int("items", len(job.Items)).
		Msg("extraction completed")
	return nil
}

func (s *Service) process(ctx context.Context, job *menu.MenuJob) error {
	data, err := s.storage.Download(ctx, job.ObjectKey)
	if err != nil {
		return err
	}

	raw, err := s.parseWithRetry(ctx, data, mimeTypeFor(job.ObjectKey))
	if err != nil {
		return err
	}

	job.Items = menu.NormalizeExtracted(raw)
	job.TotalRevenue, job.TotalFoodCost, job.TotalProfit = totals(job.Items)

	next, err := job.Status.Transition(menu.StatusCompleted)
	if err != nil {
		return err
	}
	job.Status = next
	job.FailureReason = nil

	return s.repo.Update(ctx, job)
}

// parseWithRetry retries transient model failures with exponential
// backoff. Attempt delays: 2s, 4s.
func (s *Service) parseWithRetry(ctx context.Context, data []byte, mimeType string) ([]menu.ExtractedItem, error) {
	var lastErr error
	for attempt := 1; attempt <= maxParseAttempts; attempt++ {
		items, err := s.parser.ParseMenu(ctx, data, mimeType)
		if err == nil {
			return items, nil
		}
		lastErr = err

		logx.Warn().
			Int("attempt", attempt).
			Err(err).
			Msg("menu parse failed")

		if attempt < maxParseAttempts {
			delay := retryBaseDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// fail returns the job to the queue with the reason recorded so the
// owner can retry the analysis.
func (s *Service) fail(ctx context.Context, job *menu.MenuJob, reason string) {
	menusProcessed.WithLabelValues("failed").Inc()

	status, err := job.Status.Transition(menu.StatusPending)
	if err != nil {
		logx.Error().
			Str("job_id", job.ID).
			Err(err).
			Msg("cannot requeue job from its current status")
		return
	}
	job.Status = status
	job.FailureReason = &reason
	if err := s.repo.Update(ctx, job); err != nil {
		logx.Error().
			Str("job_id", job.ID).
			Err(err).
			Msg("failed to record extraction failure")
		return
	}

	logx.Warn().
		Str("job_id", job.ID).
		Str("reason", reason).
		Msg("extraction failed")
}

func totals(items []menu.MenuItem) (revenue, foodCost, profit float64) {
	for _, it := range items {
		revenue += it.CurrentPrice
		foodCost += it.FoodCost
	}
	return pricing.Round2(revenue), pricing.Round2(foodCost), pricing.Round2(revenue - foodCost)
}

func mimeTypeFor(objectKey string) string {
	switch strings.ToLower(filepath.Ext(objectKey)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain"
	}
}
