// README: Cost breakdown pie chart rendering.
package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"tripwise/internal/modules/trip"
)

// CostPie renders the cost breakdown as a PNG pie chart with one slice per
// spend category. The cost model guarantees every slice is positive.
func CostPie(costs trip.CostBreakdown) ([]byte, error) {
	pie := chart.PieChart{
		Width:  512,
		Height: 512,
		Values: []chart.Value{
			{Value: float64(costs.AttractionCost), Label: "Attractions"},
			{Value: float64(costs.StayCost), Label: "Stay"},
			{Value: float64(costs.FoodCost), Label: "Food"},
		},
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render: %w", err)
	}
	return buf.Bytes(), nil
}
