package simulation

import (
	"testing"
)

func TestPercentileSummary_Defaults(t *testing.T) {
	samples := make([]float64, 100)
	for i := range samples {
		samples[i] = float64(i + 1)
	}

	summary, err := PercentileSummary(samples, nil)
	if err != nil {
		t.Fatalf("PercentileSummary failed: %v", err)
	}

	for _, key := range []string{"P50", "P90", "P95", "P99"} {
		if _, ok := summary[key]; !ok {
			t.Errorf("missing percentile key %s", key)
		}
	}
	if summary["P50"] > summary["P90"] || summary["P90"] > summary["P99"] {
		t.Errorf("percentiles not non-decreasing: %v", summary)
	}
}

func TestPercentileSummary_CustomPoints(t *testing.T) {
	samples := []float64{10, 20, 30, 40, 50}
	summary, err := PercentileSummary(samples, []float64{25, 75})
	if err != nil {
		t.Fatalf("PercentileSummary failed: %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(summary))
	}
	if _, ok := summary["P25"]; !ok {
		t.Error("missing key P25")
	}
	if _, ok := summary["P75"]; !ok {
		t.Error("missing key P75")
	}
}

func TestPercentileSummary_EmptySample(t *testing.T) {
	if _, err := PercentileSummary(nil, nil); err == nil {
		t.Error("expected an error for an empty sample")
	}
}
