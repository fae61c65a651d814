// README: Itinerary prompt construction for the generation model.
package trip

import (
	"fmt"
	"strings"

	"tripwise/internal/maps"
)

// buildItineraryPrompt embeds the trip parameters and recommended places
// into a single generation prompt.
func buildItineraryPrompt(req Request, places []maps.Place) string {
	names := make([]string, 0, len(places))
	for _, p := range places {
		names = append(names, p.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a student-friendly %d-day travel itinerary for %s.\n", req.Days, req.City)
	fmt.Fprintf(&b, "Recommended places: %s.\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "Budget: %d.\n", req.Budget)
	b.WriteString("Make it exciting and budget conscious.")
	return b.String()
}
