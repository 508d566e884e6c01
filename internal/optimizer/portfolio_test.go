package optimizer

import (
	"math"
	"testing"

	"cyberrisk/domain/controls"
)

func TestEvaluatePortfolio(t *testing.T) {
	safeguard := [controls.NumWeights]float64{5, 1, 2, 3, 4}
	maintenance := [controls.NumWeights]float64{1, 0.5, 0.5, 0.5, 0.5}
	deployment := [controls.NumControlTypes]int{1, 1, 1, 1}

	metrics := EvaluatePortfolio(deployment, safeguard, maintenance)
	if want := 15.0; math.Abs(metrics.SafeguardEffect-want) > weightTolerance {
		t.Errorf("SafeguardEffect = %v, want %v", metrics.SafeguardEffect, want)
	}
	if want := 3.0; math.Abs(metrics.MaintenanceLoad-want) > weightTolerance {
		t.Errorf("MaintenanceLoad = %v, want %v", metrics.MaintenanceLoad, want)
	}
}

func TestControlROI(t *testing.T) {
	additional := [controls.NumControlTypes]float64{1, 0, 0, 0}
	costs := [controls.NumControlTypes]float64{10_000, 0, 0, 0}

	// 20% reduction of a 100k ALE saves 20k per year against a 10k
	// investment: 100% ROI, half-year payback, 50k NPV over 3 years.
	roi := ControlROI(additional, costs, 20.0, 100_000.0)
	if roi.TotalCost != 10_000 {
		t.Errorf("TotalCost = %v, want 10000", roi.TotalCost)
	}
	if roi.AnnualSavings != 20_000 {
		t.Errorf("AnnualSavings = %v, want 20000", roi.AnnualSavings)
	}
	if math.Abs(roi.ROIPercentage-100.0) > weightTolerance {
		t.Errorf("ROIPercentage = %v, want 100", roi.ROIPercentage)
	}
	if math.Abs(roi.PaybackYears-0.5) > weightTolerance {
		t.Errorf("PaybackYears = %v, want 0.5", roi.PaybackYears)
	}
	if math.Abs(roi.NetPresentValue3Y-50_000.0) > weightTolerance {
		t.Errorf("NetPresentValue3Y = %v, want 50000", roi.NetPresentValue3Y)
	}
}

func TestControlROI_NoSavings(t *testing.T) {
	additional := [controls.NumControlTypes]float64{1, 0, 0, 0}
	costs := [controls.NumControlTypes]float64{10_000, 0, 0, 0}

	roi := ControlROI(additional, costs, 0.0, 100_000.0)
	if !math.IsInf(roi.PaybackYears, 1) {
		t.Errorf("PaybackYears = %v, want +Inf when nothing is saved", roi.PaybackYears)
	}
}

func TestRecommendations_FilterSortAndPriority(t *testing.T) {
	current := [controls.NumControlTypes]int{2, 1, 3, 1}
	additional := [controls.NumControlTypes]float64{0.005, 2.5, 1.2, 0.4}
	names := [controls.NumControlTypes]string{"A", "B", "C", "D"}

	recs := Recommendations(current, additional, names)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3 (negligible additions filtered)", len(recs))
	}
	if recs[0].ControlName != "B" || recs[1].ControlName != "C" || recs[2].ControlName != "D" {
		t.Errorf("order = %s, %s, %s; want B, C, D", recs[0].ControlName, recs[1].ControlName, recs[2].ControlName)
	}
	if recs[0].Priority != "High" {
		t.Errorf("B priority = %s, want High", recs[0].Priority)
	}
	if recs[1].Priority != "Medium" {
		t.Errorf("C priority = %s, want Medium", recs[1].Priority)
	}
	if recs[2].Priority != "Low" {
		t.Errorf("D priority = %s, want Low", recs[2].Priority)
	}
	if recs[0].NewTotal != 3.5 {
		t.Errorf("B NewTotal = %v, want 3.5", recs[0].NewTotal)
	}
}

func TestRecommendations_EmptyWhenNothingToAdd(t *testing.T) {
	var additional [controls.NumControlTypes]float64
	recs := Recommendations([controls.NumControlTypes]int{1, 1, 1, 1}, additional, [controls.NumControlTypes]string{"A", "B", "C", "D"})
	if len(recs) != 0 {
		t.Errorf("got %d recommendations, want none", len(recs))
	}
}
