package pricing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculate_TargetRatio(t *testing.T) {
	q := Calculate(20.00, 6.00)

	if !almostEqual(q.Profit, 14.00) {
		t.Errorf("profit = %.2f, want 14.00", q.Profit)
	}
	if !almostEqual(q.SuggestedPrice, 20.00) {
		t.Errorf("suggested = %.2f, want 20.00", q.SuggestedPrice)
	}
	if !almostEqual(q.FoodCostPct, 30.0) {
		t.Errorf("food cost pct = %.1f, want 30.0", q.FoodCostPct)
	}
}

func TestCalculate_ZeroFoodCost(t *testing.T) {
	q := Calculate(12.50, 0)

	if !almostEqual(q.SuggestedPrice, 12.50) {
		t.Errorf("suggested = %.2f, want current price 12.50", q.SuggestedPrice)
	}
	if !almostEqual(q.Profit, 12.50) {
		t.Errorf("profit = %.2f, want 12.50", q.Profit)
	}
	if q.FoodCostPct != 0 {
		t.Errorf("food cost pct = %.2f, want 0", q.FoodCostPct)
	}
}

func TestCalculate_ZeroCurrentPrice(t *testing.T) {
	q := Calculate(0, 3.00)

	if q.FoodCostPct != 0 {
		t.Errorf("food cost pct = %.2f, want 0 when current price is 0", q.FoodCostPct)
	}
	if !almostEqual(q.SuggestedPrice, 10.00) {
		t.Errorf("suggested = %.2f, want 10.00", q.SuggestedPrice)
	}
}

func TestCalculate_NegativeProfitNotClamped(t *testing.T) {
	q := Calculate(8.00, 9.50)

	if !almostEqual(q.Profit, -1.50) {
		t.Errorf("profit = %.2f, want -1.50", q.Profit)
	}
}

func TestCalculate_SuggestedPriceRounding(t *testing.T) {
	// 5.00 / 0.30 = 16.666... → 16.67
	q := Calculate(10.00, 5.00)

	if !almostEqual(q.SuggestedPrice, 16.67) {
		t.Errorf("suggested = %.2f, want 16.67", q.SuggestedPrice)
	}
}

func TestDecreasedPrice(t *testing.T) {
	if got := DecreasedPrice(20.00); !almostEqual(got, 18.00) {
		t.Errorf("decreased = %.2f, want 18.00", got)
	}
	// 16.67 * 0.9 = 15.003 → 15.00
	if got := DecreasedPrice(16.67); !almostEqual(got, 15.00) {
		t.Errorf("decreased = %.2f, want 15.00", got)
	}
}

func TestMargin_ZeroRevenue(t *testing.T) {
	if got := Margin(30, 0); got != 0 {
		t.Errorf("margin = %.2f, want 0 for zero revenue", got)
	}
	if got := Margin(30, 100); !almostEqual(got, 30.0) {
		t.Errorf("margin = %.2f, want 30.0", got)
	}
}

func TestPctChange_ZeroBaseline(t *testing.T) {
	if got := PctChange(0, 50); got != 0 {
		t.Errorf("pct change = %.2f, want 0 for zero baseline", got)
	}
	if got := PctChange(100, 150); !almostEqual(got, 50.0) {
		t.Errorf("pct change = %.2f, want 50.0", got)
	}
}
