package templates

// Template is a menu design the frontend can render an approved
// menu into. The catalog is fixed at build time.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Style       string `json:"style"`
	Premium     bool   `json:"premium"`
}

var catalog = []Template{
	{ID: "classic-bistro", Name: "Classic Bistro", Description: "Traditional two-column layout with serif typography", Style: "classic", Premium: false},
	{ID: "modern-minimal", Name: "Modern Minimal", Description: "Clean single-column design with generous whitespace", Style: "modern", Premium: false},
	{ID: "rustic-charm", Name: "Rustic Charm", Description: "Warm earthy palette with hand-drawn dividers", Style: "rustic", Premium: false},
	{ID: "elegant-fine", Name: "Elegant Fine Dining", Description: "Gold accents and refined spacing for upscale menus", Style: "elegant", Premium: true},
	{ID: "cafe-chalkboard", Name: "Cafe Chalkboard", Description: "Chalkboard background with casual lettering", Style: "casual", Premium: false},
	{ID: "coastal-fresh", Name: "Coastal Fresh", Description: "Light blues and airy layout for seafood spots", Style: "coastal", Premium: false},
	{ID: "street-food", Name: "Street Food Bold", Description: "High-contrast colors and punchy headings", Style: "bold", Premium: false},
	{ID: "vintage-diner", Name: "Vintage Diner", Description: "Retro badges and fifties-inspired type", Style: "retro", Premium: true},
	{ID: "garden-organic", Name: "Garden Organic", Description: "Botanical accents for farm-to-table menus", Style: "organic", Premium: false},
	{ID: "midnight-lounge", Name: "Midnight Lounge", Description: "Dark theme with neon highlights for bars", Style: "dark", Premium: true},
}

func All() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

func Find(id string) (Template, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
