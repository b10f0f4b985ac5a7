package menu

import "time"

// Decision is the owner's pricing call for one item.
type Decision string

const (
	DecisionUnset    Decision = ""
	DecisionMaintain Decision = "maintain"
	DecisionIncrease Decision = "increase"
	DecisionDecrease Decision = "decrease"
	DecisionCustom   Decision = "custom"
)

func (d Decision) Valid() bool {
	switch d {
	case DecisionMaintain, DecisionIncrease, DecisionDecrease, DecisionCustom:
		return true
	}
	return false
}

// Ingredient is one costed component of a dish.
type Ingredient struct {
	Name          string  `json:"name"`
	Portion       string  `json:"portion,omitempty"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// CompetitorPrice is one observed price for a comparable dish nearby.
type CompetitorPrice struct {
	RestaurantName string  `json:"restaurant_name"`
	Price          float64 `json:"price"`
	Distance       string  `json:"distance,omitempty"`
}

// MenuItem is a single priced dish on a menu job.
// ProfitPerPlate is recomputed whenever price or food cost changes;
// it is never stored independently of its inputs.
type MenuItem struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	Category       string            `json:"category,omitempty"`
	CurrentPrice   float64           `json:"current_price"`
	FoodCost       float64           `json:"food_cost"`
	SuggestedPrice float64           `json:"suggested_price"`
	ApprovedPrice  *float64          `json:"approved_price,omitempty"`
	ProfitPerPlate float64           `json:"profit_per_plate"`
	PriceDecision  Decision          `json:"price_decision,omitempty"`
	Ingredients    []Ingredient      `json:"ingredients,omitempty"`
	Competitors    []CompetitorPrice `json:"competitor_prices,omitempty"`
}

// EffectivePrice is the approved price when one exists, else the current price.
func (i *MenuItem) EffectivePrice() float64 {
	if i.ApprovedPrice != nil {
		return *i.ApprovedPrice
	}
	return i.CurrentPrice
}

// MenuJob is one uploaded menu moving through extraction, review, and approval.
type MenuJob struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	MenuName      string     `json:"menu_name"`
	Status        Status     `json:"status"`
	Location      string     `json:"location,omitempty"`
	Items         []MenuItem `json:"items"`
	TotalRevenue  float64    `json:"total_revenue"`
	TotalFoodCost float64    `json:"total_food_cost"`
	TotalProfit   float64    `json:"total_profit"`
	ObjectKey     string     `json:"-"`
	FailureReason *string    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Item returns a pointer to the item with the given id, or nil.
func (j *MenuJob) Item(itemID string) *MenuItem {
	for idx := range j.Items {
		if j.Items[idx].ID == itemID {
			return &j.Items[idx]
		}
	}
	return nil
}

// ApprovalRequest is the owner's decision for one item. It is consumed by
// the approval pass and never persisted on its own.
type ApprovalRequest struct {
	ItemID      string   `json:"item_id"`
	Decision    Decision `json:"decision"`
	CustomPrice *float64 `json:"custom_price,omitempty"`
}
