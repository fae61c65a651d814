package trip

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tripwise/internal/ai"
	"tripwise/internal/maps"
)

// stubSearcher is a test double for PlacesSearcher.
type stubSearcher struct {
	places []maps.Place
	err    error
	calls  int
	city   string
	query  string
}

func (s *stubSearcher) Search(_ context.Context, city, query string) ([]maps.Place, error) {
	s.calls++
	s.city = city
	s.query = query
	return s.places, s.err
}

// stubRouter is a test double for RouteFinder.
type stubRouter struct {
	route       *maps.RouteSummary
	err         error
	calls       int
	origin      string
	destination string
}

func (s *stubRouter) GetRoute(_ context.Context, origin, destination string) (*maps.RouteSummary, error) {
	s.calls++
	s.origin = origin
	s.destination = destination
	return s.route, s.err
}

// stubProvider is a test double for ai.Provider.
type stubProvider struct {
	reply  string
	err    error
	calls  int
	prompt string
}

func (s *stubProvider) Generate(_ context.Context, messages []ai.Message) (string, error) {
	s.calls++
	if len(messages) > 0 {
		s.prompt = messages[len(messages)-1].Content
	}
	return s.reply, s.err
}

func somePlaces(names ...string) []maps.Place {
	var out []maps.Place
	for _, n := range names {
		out = append(out, maps.Place{Name: n, Address: n + " street"})
	}
	return out
}

func validRequest() Request {
	return Request{City: "Goa", Days: 2, Budget: 5000, Interest: InterestMuseum}
}

func TestGeneratePlan_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty city", func(r *Request) { r.City = " " }},
		{"zero days", func(r *Request) { r.Days = 0 }},
		{"negative budget", func(r *Request) { r.Budget = -1 }},
		{"unknown interest", func(r *Request) { r.Interest = "beach" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &stubSearcher{places: somePlaces("A")}
			svc := NewService(searcher, &stubRouter{}, &stubProvider{reply: "ok"})

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.GeneratePlan(context.Background(), req)
			if !errors.Is(err, ErrBadRequest) {
				t.Errorf("expected ErrBadRequest, got %v", err)
			}
			if searcher.calls != 0 {
				t.Errorf("search should not run on invalid input")
			}
		})
	}
}

func TestGeneratePlan_NoPlacesShortCircuits(t *testing.T) {
	router := &stubRouter{}
	provider := &stubProvider{reply: "should not be used"}
	svc := NewService(&stubSearcher{}, router, provider)

	req := validRequest()
	req.OptimizeRoute = true

	_, err := svc.GeneratePlan(context.Background(), req)
	if !errors.Is(err, ErrNoPlacesFound) {
		t.Fatalf("expected ErrNoPlacesFound, got %v", err)
	}
	if router.calls != 0 {
		t.Errorf("route lookup must not run when no places were found")
	}
	if provider.calls != 0 {
		t.Errorf("narrative generation must not run when no places were found")
	}
}

func TestGeneratePlan_RouteOnlyWhenRequestedAndPaired(t *testing.T) {
	tests := []struct {
		name      string
		optimize  bool
		places    []maps.Place
		wantCalls int
	}{
		{"disabled", false, somePlaces("A", "B"), 0},
		{"single place", true, somePlaces("A"), 0},
		{"enabled with pair", true, somePlaces("A", "B", "C"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := &stubRouter{route: &maps.RouteSummary{DistanceText: "2 km", DurationText: "7 mins"}}
			svc := NewService(&stubSearcher{places: tt.places}, router, &stubProvider{reply: "plan"})

			req := validRequest()
			req.OptimizeRoute = tt.optimize

			result, err := svc.GeneratePlan(context.Background(), req)
			if err != nil {
				t.Fatalf("GeneratePlan() error = %v", err)
			}
			if router.calls != tt.wantCalls {
				t.Errorf("route calls = %d, want %d", router.calls, tt.wantCalls)
			}
			if tt.wantCalls == 1 {
				if router.origin != "A" || router.destination != "B" {
					t.Errorf("route asked for %q -> %q, want first two place names", router.origin, router.destination)
				}
				if result.Route == nil || result.Route.DistanceText != "2 km" {
					t.Errorf("route missing from result: %+v", result.Route)
				}
			} else if result.Route != nil {
				t.Errorf("unexpected route in result: %+v", result.Route)
			}
		})
	}
}

func TestGeneratePlan_RouteFailureDegrades(t *testing.T) {
	router := &stubRouter{err: errors.New("directions down")}
	svc := NewService(&stubSearcher{places: somePlaces("A", "B")}, router, &stubProvider{reply: "plan"})

	req := validRequest()
	req.OptimizeRoute = true

	result, err := svc.GeneratePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("route failure must not fail the plan, got %v", err)
	}
	if result.Route != nil {
		t.Errorf("route should be omitted on lookup failure")
	}
	if result.Narrative != "plan" {
		t.Errorf("narrative = %q, want %q", result.Narrative, "plan")
	}
}

func TestGeneratePlan_AssemblesResult(t *testing.T) {
	searcher := &stubSearcher{places: somePlaces("Fort Aguada", "Basilica of Bom Jesus")}
	provider := &stubProvider{reply: "Day 1: explore."}
	svc := NewService(searcher, &stubRouter{}, provider)

	result, err := svc.GeneratePlan(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("GeneratePlan() error = %v", err)
	}

	if searcher.city != "Goa" || searcher.query != "museum" {
		t.Errorf("search got (%q, %q), want (Goa, museum)", searcher.city, searcher.query)
	}
	if len(result.Places) != 2 || result.Places[0].Name != "Fort Aguada" {
		t.Errorf("places not preserved in rank order: %+v", result.Places)
	}
	if result.Costs.TotalCost != 3200 || result.Costs.RemainingBudget != 1800 {
		t.Errorf("costs = %+v, want total 3200 remaining 1800", result.Costs)
	}
	if result.Narrative != "Day 1: explore." {
		t.Errorf("narrative = %q", result.Narrative)
	}

	// The prompt embeds the trip parameters and place names.
	for _, want := range []string{"2-day", "Goa", "Fort Aguada", "Basilica of Bom Jesus", "5000"} {
		if !strings.Contains(provider.prompt, want) {
			t.Errorf("prompt missing %q: %s", want, provider.prompt)
		}
	}
}

func TestGeneratePlan_GenerationFailureIsHard(t *testing.T) {
	svc := NewService(&stubSearcher{places: somePlaces("A")}, &stubRouter{}, &stubProvider{err: errors.New("model down")})

	_, err := svc.GeneratePlan(context.Background(), validRequest())
	if err == nil {
		t.Fatal("expected error when narrative generation fails")
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrNoPlacesFound) {
		t.Errorf("generation failure mapped to wrong kind: %v", err)
	}
}

func TestGeneratePlan_SearchFailure(t *testing.T) {
	provider := &stubProvider{reply: "unused"}
	svc := NewService(&stubSearcher{err: errors.New("quota exceeded")}, &stubRouter{}, provider)

	_, err := svc.GeneratePlan(context.Background(), validRequest())
	if err == nil {
		t.Fatal("expected error when search fails")
	}
	if provider.calls != 0 {
		t.Errorf("generation must not run after a search failure")
	}
}
