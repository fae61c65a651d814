// README: Trip planning orchestrator: search, route, costs, narrative.
package trip

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"tripwise/internal/ai"
	"tripwise/internal/maps"
)

var (
	ErrBadRequest    = errors.New("bad request")
	ErrNoPlacesFound = errors.New("no places found")
)

// PlacesSearcher finds candidate places for an interest query in a city.
type PlacesSearcher interface {
	Search(ctx context.Context, city, query string) ([]maps.Place, error)
}

// RouteFinder estimates a route between two free-text locations.
type RouteFinder interface {
	GetRoute(ctx context.Context, origin, destination string) (*maps.RouteSummary, error)
}

type Service struct {
	places PlacesSearcher
	routes RouteFinder
	ai     ai.Provider
}

func NewService(places PlacesSearcher, routes RouteFinder, provider ai.Provider) *Service {
	return &Service{places: places, routes: routes, ai: provider}
}

// GeneratePlan runs one full planning cycle: validate, search places,
// optionally route between the top two, compute costs, generate the
// narrative. Each call is independent; nothing is cached across calls.
func (s *Service) GeneratePlan(ctx context.Context, req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	places, err := s.places.Search(ctx, req.City, req.Interest.Query())
	if err != nil {
		return nil, fmt.Errorf("places search: %w", err)
	}
	if len(places) == 0 {
		return nil, ErrNoPlacesFound
	}

	result := &Result{Places: places}

	// Route lookup is best-effort between the two top-ranked places. It uses
	// place names as the origin/destination text, so the directions service
	// does the geocoding. A failure here degrades to a plan without a route
	// section instead of failing the cycle.
	if req.OptimizeRoute && len(places) >= 2 {
		route, err := s.routes.GetRoute(ctx, places[0].Name, places[1].Name)
		if err != nil {
			log.Printf("route lookup failed for %q -> %q: %v", places[0].Name, places[1].Name, err)
		} else {
			result.Route = route
		}
	}

	// Costs are always computed; whether to show them is the UI's call.
	result.Costs = ComputeCosts(req.Days, req.Budget)

	narrative, err := s.ai.Generate(ctx, []ai.Message{
		{Role: ai.RoleUser, Content: buildItineraryPrompt(req, places)},
	})
	if err != nil {
		return nil, fmt.Errorf("itinerary generation: %w", err)
	}
	result.Narrative = narrative

	return result, nil
}

func validate(req Request) error {
	switch {
	case strings.TrimSpace(req.City) == "":
		return fmt.Errorf("%w: city is required", ErrBadRequest)
	case req.Days < 1:
		return fmt.Errorf("%w: days must be at least 1", ErrBadRequest)
	case req.Budget < 0:
		return fmt.Errorf("%w: budget must not be negative", ErrBadRequest)
	case !req.Interest.Valid():
		return fmt.Errorf("%w: unknown interest %q", ErrBadRequest, req.Interest)
	}
	return nil
}
