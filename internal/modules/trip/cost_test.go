package trip

import "testing"

func TestComputeCosts(t *testing.T) {
	tests := []struct {
		name   string
		days   int
		budget int64
		want   CostBreakdown
	}{
		{
			name:   "Goa weekend within budget",
			days:   2,
			budget: 5000,
			want: CostBreakdown{
				AttractionCost:  1000,
				StayCost:        1600,
				FoodCost:        600,
				TotalCost:       3200,
				RemainingBudget: 1800,
			},
		},
		{
			name:   "single day",
			days:   1,
			budget: 2100,
			want: CostBreakdown{
				AttractionCost:  1000,
				StayCost:        800,
				FoodCost:        300,
				TotalCost:       2100,
				RemainingBudget: 0,
			},
		},
		{
			name:   "over budget goes negative",
			days:   7,
			budget: 1000,
			want: CostBreakdown{
				AttractionCost:  1000,
				StayCost:        5600,
				FoodCost:        2100,
				TotalCost:       8700,
				RemainingBudget: -7700,
			},
		},
		{
			name:   "zero budget is allowed",
			days:   3,
			budget: 0,
			want: CostBreakdown{
				AttractionCost:  1000,
				StayCost:        2400,
				FoodCost:        900,
				TotalCost:       4300,
				RemainingBudget: -4300,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCosts(tt.days, tt.budget)
			if got != tt.want {
				t.Errorf("ComputeCosts(%d, %d) = %+v, want %+v", tt.days, tt.budget, got, tt.want)
			}
			if got.TotalCost != got.AttractionCost+got.StayCost+got.FoodCost {
				t.Errorf("TotalCost %d is not the sum of its parts", got.TotalCost)
			}
		})
	}
}
