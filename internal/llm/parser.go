package llm

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/menu"
)

// stripFences removes markdown code fences that models sometimes wrap
// around JSON despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func parseExtractedItems(raw string) ([]menu.ExtractedItem, error) {
	cleaned := stripFences(raw)

	var parsed struct {
		Items []menu.ExtractedItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, errors.New("invalid LLM JSON output")
	}

	// Items without a name are noise from the extraction, drop them.
	items := parsed.Items[:0]
	for _, it := range parsed.Items {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

func parseCompetitors(raw string) (map[string][]menu.CompetitorPrice, error) {
	cleaned := stripFences(raw)

	var parsed struct {
		Competitors map[string][]menu.CompetitorPrice `json:"competitors"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, errors.New("invalid LLM JSON output")
	}
	if parsed.Competitors == nil {
		return map[string][]menu.CompetitorPrice{}, nil
	}
	return parsed.Competitors, nil
}

func cleanDescription(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"")
	return s
}
