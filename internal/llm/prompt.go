package llm

import (
	"fmt"
	"strings"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/menu"
)

func BuildMenuParsePrompt() string {
	return `
You are a data extraction engine for restaurant menus.

Your task:
- Read the attached menu document.
- Convert every dish into STRICT JSON.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO comments.
- NO extra text.
- Estimate food_cost as roughly 30% of the listed price when the
  document does not state ingredient costs.

If you cannot extract data, return this exact JSON:
{
  "items": []
}

Required JSON schema:
{
  "items": [
    {
      "name": "string",
      "description": "string",
      "category": "string",
      "current_price": number,
      "food_cost": number,
      "ingredients": [
        {
          "name": "string",
          "portion": "string",
          "estimated_cost": number
        }
      ]
    }
  ]
}
`
}

var descriptionStyles = map[string]string{
	"professional": "polished and appetizing, suitable for an upscale menu",
	"casual":       "friendly and relaxed, like a neighborhood diner",
	"creative":     "vivid and imaginative, with sensory language",
	"chef":         "written in the voice of the chef, highlighting technique and ingredients",
}

// DefaultDescriptionStyle is used when the caller does not pick one.
const DefaultDescriptionStyle = "professional"

func ValidDescriptionStyle(style string) bool {
	_, ok := descriptionStyles[style]
	return ok
}

func BuildDescriptionPrompt(itemName, cuisine, style string) string {
	tone, ok := descriptionStyles[style]
	if !ok {
		tone = descriptionStyles[DefaultDescriptionStyle]
	}

	cuisineLine := ""
	if cuisine != "" {
		cuisineLine = fmt.Sprintf("The restaurant serves %s cuisine.\n", cuisine)
	}

	return fmt.Sprintf(`
Write a menu description for the dish "%s".
%sThe tone should be %s.

Rules:
- 2 sentences maximum.
- No price.
- No markdown.
- Return ONLY the description text.
`, itemName, cuisineLine, tone)
}

func BuildCompetitorPrompt(location string, items []menu.MenuItem) string {
	var names []string
	for _, it := range items {
		names = append(names, fmt.Sprintf("%s ($%.2f)", it.Name, it.CurrentPrice))
	}

	return fmt.Sprintf(`
You are a restaurant market analyst.

For a restaurant located in %s, estimate what nearby competitors
charge for comparable dishes. The menu items are:

%s

Output MUST be valid JSON, ONLY JSON, matching this schema:
{
  "competitors": {
    "<item name>": [
      {
        "restaurant_name": "string",
        "price": number,
        "distance": "string"
      }
    ]
  }
}

List 2 or 3 plausible competitors per item. Use realistic local
restaurant names and prices within 30%% of the given price.
`, location, strings.Join(names, "\n"))
}
