package profile

import "time"

// Profile describes the owner's restaurant. One per user; the
// competitor analysis uses Location and CuisineType as context.
type Profile struct {
	UserID         string    `json:"-"`
	RestaurantName string    `json:"restaurant_name"`
	CuisineType    string    `json:"cuisine_type"`
	Location       string    `json:"location"`
	PriceRange     string    `json:"price_range"` // $ | $$ | $$$ | $$$$
	Description    string    `json:"description"`
	UpdatedAt      time.Time `json:"updated_at"`
}

var validPriceRanges = map[string]bool{
	"":     true,
	"$":    true,
	"$$":   true,
	"$$$":  true,
	"$$$$": true,
}

func ValidPriceRange(r string) bool {
	return validPriceRanges[r]
}
