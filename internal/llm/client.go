package llm

import (
	"context"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/menu"
)

// Client is everything the rest of the system asks a language model for.
type Client interface {
	// ParseMenu turns an uploaded menu file into structured items.
	ParseMenu(ctx context.Context, data []byte, mimeType string) ([]menu.ExtractedItem, error)

	// GenerateDescription writes marketing copy for a single dish.
	GenerateDescription(ctx context.Context, itemName, cuisine, style string) (string, error)

	// EstimateCompetitors returns competitor price observations keyed by item name.
	EstimateCompetitors(ctx context.Context, location string, items []menu.MenuItem) (map[string][]menu.CompetitorPrice, error)
}
