package optimizer

import (
	"math"
	"sort"

	"cyberrisk/domain/controls"
)

// PortfolioMetrics are the modeled outcomes of a given deployment.
type PortfolioMetrics struct {
	SafeguardEffect float64 `json:"safeguard_effect"`
	MaintenanceLoad float64 `json:"maintenance_load"`
}

// EvaluatePortfolio predicts the safeguard effect and maintenance load
// of a deployment under previously fitted weight vectors.
func EvaluatePortfolio(deployment [controls.NumControlTypes]int, safeguard, maintenance [controls.NumWeights]float64) PortfolioMetrics {
	var counts [controls.NumControlTypes]float64
	for i, c := range deployment {
		counts[i] = float64(c)
	}
	return PortfolioMetrics{
		SafeguardEffect: predict(safeguard, counts),
		MaintenanceLoad: predict(maintenance, counts),
	}
}

// ROIMetrics quantify a deployment's return against the current ALE.
type ROIMetrics struct {
	TotalCost         float64 `json:"total_cost"`
	AnnualSavings     float64 `json:"annual_savings"`
	ROIPercentage     float64 `json:"roi_percentage"`
	PaybackYears      float64 `json:"payback_years"`
	NetPresentValue3Y float64 `json:"net_present_value_3y"`
}

// ControlROI computes return-on-investment metrics for an additional
// deployment given the risk reduction it buys (percent of current ALE).
func ControlROI(additional, unitCosts [controls.NumControlTypes]float64, riskReductionPct, currentALE float64) ROIMetrics {
	totalCost := 0.0
	for i := range additional {
		totalCost += additional[i] * unitCosts[i]
	}
	annualSavings := currentALE * (riskReductionPct / 100.0)

	roi := 0.0
	if totalCost > 0 {
		roi = (annualSavings - totalCost) / totalCost * 100.0
	}
	payback := math.Inf(1)
	if annualSavings > 0 {
		payback = totalCost / annualSavings
	}

	return ROIMetrics{
		TotalCost:         totalCost,
		AnnualSavings:     annualSavings,
		ROIPercentage:     roi,
		PaybackYears:      payback,
		NetPresentValue3Y: 3*annualSavings - totalCost,
	}
}

// Recommendation is a human-readable deployment suggestion.
type Recommendation struct {
	ControlName           string  `json:"control_name"`
	CurrentCount          int     `json:"current_count"`
	RecommendedAdditional float64 `json:"recommended_additional"`
	NewTotal              float64 `json:"new_total"`
	Priority              string  `json:"priority"`
}

// recommendationFloor filters out negligible fractional additions.
const recommendationFloor = 0.01

// Recommendations converts an additional-controls vector into sorted,
// named suggestions, largest addition first.
func Recommendations(current [controls.NumControlTypes]int, additional [controls.NumControlTypes]float64, names [controls.NumControlTypes]string) []Recommendation {
	recs := make([]Recommendation, 0, controls.NumControlTypes)
	for i := range additional {
		if additional[i] <= recommendationFloor {
			continue
		}
		rounded := math.Round(additional[i]*100) / 100
		recs = append(recs, Recommendation{
			ControlName:           names[i],
			CurrentCount:          current[i],
			RecommendedAdditional: rounded,
			NewTotal:              float64(current[i]) + rounded,
			Priority:              priorityFor(additional[i]),
		})
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].RecommendedAdditional > recs[j].RecommendedAdditional
	})
	return recs
}

func priorityFor(additional float64) string {
	switch {
	case additional > 2:
		return "High"
	case additional > 1:
		return "Medium"
	default:
		return "Low"
	}
}
