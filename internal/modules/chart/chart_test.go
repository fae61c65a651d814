package chart

import (
	"bytes"
	"testing"

	"tripwise/internal/modules/trip"
)

func TestCostPie(t *testing.T) {
	png, err := CostPie(trip.ComputeCosts(2, 5000))
	if err != nil {
		t.Fatalf("CostPie() error = %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("output is not a PNG image")
	}
}
