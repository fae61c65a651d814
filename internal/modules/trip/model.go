// README: Trip planning data model: request, interest categories, result.
package trip

import (
	"tripwise/internal/maps"
)

// Interest is the place-type filter used in the search query.
type Interest string

const (
	InterestAttraction    Interest = "attraction"
	InterestMuseum        Interest = "museum"
	InterestPark          Interest = "park"
	InterestAmusementPark Interest = "amusement_park"
)

// Query returns the search text for the interest category.
func (i Interest) Query() string {
	switch i {
	case InterestAttraction:
		return "tourist attraction"
	case InterestMuseum:
		return "museum"
	case InterestPark:
		return "park"
	case InterestAmusementPark:
		return "amusement park"
	}
	return ""
}

// Valid reports whether the interest is one of the known categories.
func (i Interest) Valid() bool {
	return i.Query() != ""
}

// Request holds the user's trip parameters for one plan generation.
// It is built once per generate action and never mutated.
type Request struct {
	City           string   `json:"city"`
	Days           int      `json:"days"`
	Budget         int64    `json:"budget"`
	Interest       Interest `json:"interest"`
	OriginLocation string   `json:"origin_location,omitempty"`
	OptimizeRoute  bool     `json:"optimize_route"`
	ShowCostChart  bool     `json:"show_cost_chart"`
	ExportPDF      bool     `json:"export_pdf"`
}

// Result aggregates everything one generation cycle produced.
// It lives for the duration of the request and is never stored.
type Result struct {
	Places    []maps.Place       `json:"places"`
	Route     *maps.RouteSummary `json:"route,omitempty"`
	Costs     CostBreakdown      `json:"costs"`
	Narrative string             `json:"narrative"`
}
