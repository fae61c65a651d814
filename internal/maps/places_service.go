package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Place represents a simplified search result.
type Place struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Rating  *float32 `json:"rating,omitempty"`
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client     *maps.Client
	maxResults int
}

// NewPlacesService creates a PlacesService with the given API key.
// maxResults caps how many ranked results a search returns.
func NewPlacesService(apiKey string, maxResults int) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client, maxResults: maxResults}, nil
}

// NewPlacesServiceWithClient wires a pre-built maps client. Used by tests.
func NewPlacesServiceWithClient(client *maps.Client, maxResults int) *PlacesService {
	return &PlacesService{client: client, maxResults: maxResults}
}

// Search runs a text search for the given interest query in a city and
// returns up to maxResults places in the order the API ranked them.
// A response with no results is not an error: the caller treats an empty
// slice as "no places found" and tells the user to try another city.
func (s *PlacesService) Search(ctx context.Context, city, query string) ([]Place, error) {
	r := &maps.TextSearchRequest{
		Query: fmt.Sprintf("%s in %s", query, city),
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Place
	for _, result := range resp.Results {
		p := Place{
			Name:    result.Name,
			Address: result.FormattedAddress,
		}
		// The API omits the rating field for unrated places; keep those nil
		// so the UI can show "N/A" instead of a fake zero.
		if result.Rating > 0 {
			rating := result.Rating
			p.Rating = &rating
		}
		results = append(results, p)

		if len(results) >= s.maxResults {
			break
		}
	}

	return results, nil
}
