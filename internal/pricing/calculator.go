package pricing

import "math"

// TargetFoodCostRatio drives suggested pricing: a dish should cost the
// kitchen about 30% of what the guest pays for it.
const TargetFoodCostRatio = 0.30

// DecreaseFactor is the fixed discount applied off the suggested price
// when the owner chooses to lower a price.
const DecreaseFactor = 0.90

// Quote is the derived pricing for one menu item.
type Quote struct {
	Profit         float64 `json:"profit"`
	SuggestedPrice float64 `json:"suggested_price"`
	FoodCostPct    float64 `json:"food_cost_pct"`
}

// Round2 rounds a currency amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Calculate derives profit, suggested price, and food-cost percentage
// from the current price and estimated food cost. Profit may be negative;
// that is a signal to the owner, not an error.
func Calculate(currentPrice, foodCost float64) Quote {
	q := Quote{
		Profit:         currentPrice - foodCost,
		SuggestedPrice: currentPrice,
	}

	if foodCost > 0 {
		q.SuggestedPrice = Round2(foodCost / TargetFoodCostRatio)
	}

	if currentPrice > 0 {
		q.FoodCostPct = foodCost / currentPrice * 100
	}

	return q
}

// DecreasedPrice applies the fixed 10% discount off a suggested price.
func DecreasedPrice(suggestedPrice float64) float64 {
	return Round2(suggestedPrice * DecreaseFactor)
}

// Margin returns profit as a percentage of revenue, 0 when revenue is 0.
func Margin(profit, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return profit / revenue * 100
}

// PctChange returns the percentage change from baseline to value,
// 0 when the baseline is 0.
func PctChange(baseline, value float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (value - baseline) / baseline * 100
}
