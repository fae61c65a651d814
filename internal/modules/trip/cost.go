// README: Cost model: fixed daily rates, pure arithmetic.
package trip

// Per-trip and per-day rates in whole currency units.
const (
	AttractionCost = 1000 // flat, independent of trip length
	StayCostPerDay = 800
	FoodCostPerDay = 300
)

// CostBreakdown is the estimated spend for a trip. RemainingBudget may be
// negative; an over-budget trip is surfaced, not rejected.
type CostBreakdown struct {
	AttractionCost  int64 `json:"attraction_cost"`
	StayCost        int64 `json:"stay_cost"`
	FoodCost        int64 `json:"food_cost"`
	TotalCost       int64 `json:"total_cost"`
	RemainingBudget int64 `json:"remaining_budget"`
}

// ComputeCosts derives the breakdown for a trip of the given length.
func ComputeCosts(days int, budget int64) CostBreakdown {
	c := CostBreakdown{
		AttractionCost: AttractionCost,
		StayCost:       StayCostPerDay * int64(days),
		FoodCost:       FoodCostPerDay * int64(days),
	}
	c.TotalCost = c.AttractionCost + c.StayCost + c.FoodCost
	c.RemainingBudget = budget - c.TotalCost
	return c
}
