// README: PDF export of the generated itinerary.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Heading is the fixed document title.
const Heading = "AI Travel Planner - Trip Itinerary"

// FileName is the download name offered to the user.
const FileName = "TripPlan.pdf"

// PDF renders the narrative as a single-flow paginated document: heading,
// spacer, then the narrative as body paragraphs. Page breaks come from the
// renderer's automatic flow. Streams are left uncompressed so the artifact
// stays text-greppable.
func PDF(narrative string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.AddPage()

	// Core fonts are cp1252; translate so accented text survives.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 10, tr(Heading), "", "L", false)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	for _, para := range strings.Split(narrative, "\n") {
		if para == "" {
			pdf.Ln(4)
			continue
		}
		pdf.MultiCell(0, 6, tr(para), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}
	return buf.Bytes(), nil
}
