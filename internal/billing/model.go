package billing

import "time"

// ----- session / subscription lifecycle -----

const (
	SessionKindCredits      = "credits"
	SessionKindSubscription = "subscription"
)

const (
	SessionPending = "pending"
	SessionPaid    = "paid"
	SessionFailed  = "failed"
)

const (
	SubscriptionActive   = "active"
	SubscriptionCanceled = "canceled"
)

type CreditPackage struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Credits  int     `json:"credits"`
	PriceUSD float64 `json:"price_usd"`
}

type Plan struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	PriceUSD       float64 `json:"price_usd"`
	MonthlyCredits int     `json:"monthly_credits"`
}

// Session records one checkout attempt with the payment provider.
// Credited flips exactly once so status polling never double-grants.
type Session struct {
	ID          string    `json:"session_id"`
	UserID      string    `json:"-"`
	Kind        string    `json:"kind"`
	RefID       string    `json:"ref_id"`
	Status      string    `json:"status"`
	CheckoutURL string    `json:"checkout_url,omitempty"`
	Credited    bool      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Subscription struct {
	ID               string    `json:"id"`
	UserID           string    `json:"-"`
	PlanID           string    `json:"plan_id"`
	Status           string    `json:"status"`
	CurrentPeriodEnd time.Time `json:"current_period_end"`
	CreatedAt        time.Time `json:"created_at"`
}
