package export

import (
	"bytes"
	"testing"
)

func TestPDF(t *testing.T) {
	tests := []struct {
		name      string
		narrative string
	}{
		{"single paragraph", "Day 1: Visit Fort Aguada and relax at the beach."},
		{"multi paragraph", "Day 1: Old Goa churches.\n\nDay 2: Spice plantation tour.\nEvening at Panjim."},
		{"accented text", "Dinner at a café near the promenade."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := PDF(tt.narrative)
			if err != nil {
				t.Fatalf("PDF() error = %v", err)
			}
			if !bytes.HasPrefix(doc, []byte("%PDF-")) {
				t.Fatalf("output is not a PDF document")
			}
			if !bytes.Contains(doc, []byte(Heading)) {
				t.Errorf("document missing heading %q", Heading)
			}
			// Uncompressed streams keep body text greppable line by line.
			for _, line := range bytes.Split([]byte(tt.narrative), []byte("\n")) {
				if len(line) == 0 {
					continue
				}
				if !bytes.Contains(doc, pdfEncoded(line)) {
					t.Errorf("document missing narrative line %q", line)
				}
			}
		})
	}
}

// pdfEncoded maps a UTF-8 line to the cp1252 bytes fpdf writes into the page
// stream. Only the non-ASCII characters used in the tests are mapped.
func pdfEncoded(line []byte) []byte {
	s := string(line)
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 0x80 {
			out = append(out, byte(r))
			continue
		}
		if r == 'é' { // é in cp1252
			out = append(out, 0xe9)
		}
	}
	return out
}
