package simulation

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// DefaultPercentiles are the reporting percentiles of the simulated
// total-impact sample.
var DefaultPercentiles = []float64{50, 90, 95, 99}

// PercentileSummary computes the requested percentiles of a sample,
// keyed "P50", "P90", ... A nil points slice uses DefaultPercentiles.
func PercentileSummary(samples []float64, points []float64) (map[string]float64, error) {
	if points == nil {
		points = DefaultPercentiles
	}
	data := stats.Float64Data(samples)
	summary := make(map[string]float64, len(points))
	for _, p := range points {
		v, err := stats.Percentile(data, p)
		if err != nil {
			return nil, fmt.Errorf("percentile P%g: %w", p, err)
		}
		summary[fmt.Sprintf("P%g", p)] = v
	}
	return summary, nil
}
