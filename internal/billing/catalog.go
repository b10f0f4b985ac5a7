package billing

// The catalog is fixed at build time. Prices are in USD.

var creditPackages = []CreditPackage{
	{ID: "starter", Name: "Starter Pack", Credits: 10, PriceUSD: 9.99},
	{ID: "growth", Name: "Growth Pack", Credits: 25, PriceUSD: 19.99},
	{ID: "pro", Name: "Pro Pack", Credits: 60, PriceUSD: 39.99},
}

var plans = []Plan{
	{ID: "basic", Name: "Basic", PriceUSD: 14.99, MonthlyCredits: 20},
	{ID: "pro", Name: "Pro", PriceUSD: 29.99, MonthlyCredits: 50},
	{ID: "enterprise", Name: "Enterprise", PriceUSD: 79.99, MonthlyCredits: 150},
}

func CreditPackages() []CreditPackage {
	out := make([]CreditPackage, len(creditPackages))
	copy(out, creditPackages)
	return out
}

func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

func findPackage(id string) (CreditPackage, bool) {
	for _, p := range creditPackages {
		if p.ID == id {
			return p, true
		}
	}
	return CreditPackage{}, false
}

func findPlan(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
