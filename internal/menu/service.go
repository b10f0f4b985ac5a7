package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/core"
	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/pricing"
)

// Storage is where uploaded menu files live.
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

// SnapshotRecorder freezes a job's approved pricing state after an
// approval pass. Implemented by the history package.
type SnapshotRecorder interface {
	Record(ctx context.Context, job *MenuJob) (string, error)
}

// CompetitorEstimator supplies competitor price observations per item name.
// Implemented by the LLM collaborator; treated as opaque here.
type CompetitorEstimator interface {
	EstimateCompetitors(
		ctx context.Context,
		location string,
		items []MenuItem,
	) (map[string][]CompetitorPrice, error)
}

type Service struct {
	repo        Repository
	storage     Storage
	credits     core.CreditLedger
	recorder    SnapshotRecorder
	competitors CompetitorEstimator
}

func NewService(
	repo Repository,
	storage Storage,
	credits core.CreditLedger,
	recorder SnapshotRecorder,
	competitors CompetitorEstimator,
) *Service {
	return &Service{
		repo:        repo,
		storage:     storage,
		credits:     credits,
		recorder:    recorder,
		competitors: competitors,
	}
}

// --------------------------------------------------
// Upload menu file (COSTS 1 CREDIT)
// --------------------------------------------------
func (s *Service) Upload(
	ctx context.Context,
	userID string,
	file multipart.File,
	filename string,
	menuName string,
) (*MenuJob, error) {

	if err := ValidateFileExtension(filename); err != nil {
		return nil, err
	}

	if menuName == "" {
		menuName = strings.TrimSuffix(filename, filepath.Ext(filename))
	}

	if err := s.credits.Debit(ctx, userID, 1); err != nil {
		return nil, err
	}

	key := fmt.Sprintf(
		"menus/%s/%s%s",
		userID,
		uuid.New().String(),
		strings.ToLower(filepath.Ext(filename)),
	)

	if _, err := s.storage.Upload(ctx, key, file); err != nil {
		return nil, err
	}

	job := &MenuJob{
		ID:        uuid.New().String(),
		UserID:    userID,
		MenuName:  menuName,
		Status:    StatusPending,
		ObjectKey: key,
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// --------------------------------------------------
// Owner-scoped reads and updates
// --------------------------------------------------
func (s *Service) ListMine(ctx context.Context, userID string) ([]*MenuJob, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *Service) Get(ctx context.Context, jobID, userID string) (*MenuJob, error) {
	return s.repo.GetByOwner(ctx, jobID, userID)
}

func (s *Service) UpdateDetails(
	ctx context.Context,
	jobID string,
	userID string,
	menuName string,
	location string,
) (*MenuJob, error) {

	job, err := s.repo.GetByOwner(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}

	if menuName != "" {
		job.MenuName = menuName
	}
	if location != "" {
		job.Location = location
	}

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *Service) Delete(ctx context.Context, jobID, userID string) error {
	return s.repo.DeleteByOwner(ctx, jobID, userID)
}

// --------------------------------------------------
// Queue for extraction
// --------------------------------------------------
func (s *Service) RequestAnalysis(ctx context.Context, jobID, userID string) error {
	job, err := s.repo.GetByOwner(ctx, jobID, userID)
	if err != nil {
		return err
	}

	if _, err := job.Status.Transition(StatusAnalyzing); err != nil {
		return err
	}

	return s.repo.MarkForAnalysis(ctx, job.ID)
}

// --------------------------------------------------
// Competitor price estimation (opaque LLM collaborator)
// --------------------------------------------------
func (s *Service) AnalyzeCompetitors(
	ctx context.Context,
	jobID string,
	userID string,
) (*MenuJob, error) {

	job, err := s.repo.GetByOwner(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}

	if len(job.Items) == 0 {
		return nil, errors.New("menu has no items to analyze")
	}

	observations, err := s.competitors.EstimateCompetitors(ctx, job.Location, job.Items)
	if err != nil {
		return nil, err
	}

	for idx := range job.Items {
		if obs, ok := observations[job.Items[idx].Name]; ok {
			job.Items[idx].Competitors = obs
		}
	}

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// --------------------------------------------------
// Normalization of extracted items
// --------------------------------------------------

// ExtractedItem is the raw shape the extraction collaborator produces.
type ExtractedItem struct {
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Category     string       `json:"category,omitempty"`
	CurrentPrice float64      `json:"current_price"`
	FoodCost     float64      `json:"food_cost"`
	Ingredients  []Ingredient `json:"ingredients,omitempty"`
}

// NormalizeExtracted assigns identifiers and derives suggested price and
// profit for every raw item coming out of extraction.
func NormalizeExtracted(raw []ExtractedItem) []MenuItem {
	items := make([]MenuItem, 0, len(raw))
	for _, r := range raw {
		q := pricing.Calculate(r.CurrentPrice, r.FoodCost)
		items = append(items, MenuItem{
			ID:             uuid.New().String(),
			Name:           r.Name,
			Description:    r.Description,
			Category:       r.Category,
			CurrentPrice:   r.CurrentPrice,
			FoodCost:       r.FoodCost,
			SuggestedPrice: q.SuggestedPrice,
			ProfitPerPlate: q.Profit,
			Ingredients:    r.Ingredients,
		})
	}
	return items
}
