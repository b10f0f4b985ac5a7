package llm

import "testing"

func TestParseExtractedItems(t *testing.T) {
	raw := `{
		"items": [
			{"name": "Burger", "description": "House classic", "category": "mains",
			 "current_price": 20, "food_cost": 6,
			 "ingredients": [{"name": "Beef patty", "portion": "150g", "estimated_cost": 3.5}]},
			{"name": "  ", "current_price": 5, "food_cost": 1},
			{"name": "Salad", "current_price": 10, "food_cost": 3}
		]
	}`

	items, err := parseExtractedItems(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected nameless item dropped, got %d items", len(items))
	}
	if items[0].Name != "Burger" || items[0].CurrentPrice != 20 {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if len(items[0].Ingredients) != 1 || items[0].Ingredients[0].Name != "Beef patty" {
		t.Errorf("ingredients not parsed: %+v", items[0].Ingredients)
	}
}

func TestParseExtractedItemsStripsFences(t *testing.T) {
	raw := "```json\n{\"items\": [{\"name\": \"Soup\", \"current_price\": 8, \"food_cost\": 2}]}\n```"

	items, err := parseExtractedItems(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Soup" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestParseExtractedItemsRejectsGarbage(t *testing.T) {
	if _, err := parseExtractedItems("sorry, I cannot do that"); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

func TestParseCompetitors(t *testing.T) {
	raw := `{
		"competitors": {
			"Burger": [
				{"restaurant_name": "Grill House", "price": 19.5, "distance": "0.4 mi"}
			]
		}
	}`

	out, err := parseCompetitors(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obs := out["Burger"]
	if len(obs) != 1 || obs[0].RestaurantName != "Grill House" || obs[0].Price != 19.5 {
		t.Errorf("unexpected observations: %+v", obs)
	}
}

func TestParseCompetitorsEmptyObject(t *testing.T) {
	out, err := parseCompetitors(`{}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("expected empty map, got %v", out)
	}
}

func TestValidDescriptionStyle(t *testing.T) {
	for _, style := range []string{"professional", "casual", "creative", "chef"} {
		if !ValidDescriptionStyle(style) {
			t.Errorf("expected %s to be valid", style)
		}
	}
	if ValidDescriptionStyle("sarcastic") {
		t.Error("expected unknown style to be invalid")
	}
}
