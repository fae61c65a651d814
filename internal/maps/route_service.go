package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// RouteSummary is the first leg of the best route between two locations.
type RouteSummary struct {
	DistanceText string `json:"distance"`
	DurationText string `json:"duration"`
}

// RouteService handles interactions with the Google Directions API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// NewRouteServiceWithClient wires a pre-built maps client. Used by tests.
func NewRouteServiceWithClient(client *maps.Client) *RouteService {
	return &RouteService{client: client}
}

// GetRoute returns distance and travel time between origin and destination,
// or nil when the API finds no route. Origin and destination are free text;
// the caller passes place names, so ambiguous names may geocode to the
// wrong spot. That matches the planner's documented behaviour.
func (s *RouteService) GetRoute(ctx context.Context, origin, destination string) (*RouteSummary, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("directions api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, nil
	}

	leg := routes[0].Legs[0]
	return &RouteSummary{
		DistanceText: leg.Distance.HumanReadable,
		DurationText: FormatDuration(leg.Duration),
	}, nil
}

// FormatDuration renders a travel time the way the Directions web API does
// in its duration text field ("7 mins", "1 hour 5 mins").
func FormatDuration(d time.Duration) string {
	mins := int(d.Round(time.Minute) / time.Minute)
	if mins < 1 {
		mins = 1
	}
	hours := mins / 60
	mins = mins % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%d %s", mins, plural(mins, "min"))
	case mins == 0:
		return fmt.Sprintf("%d %s", hours, plural(hours, "hour"))
	default:
		return fmt.Sprintf("%d %s %d %s", hours, plural(hours, "hour"), mins, plural(mins, "min"))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
