package simulation

import "cyberrisk/domain/risk"

// OccurrenceMean is the expected annual incident count, sum(c_i * p_i).
// The table must already be validated (probabilities summing to ~1).
func OccurrenceMean(t risk.OccurrenceTable) float64 {
	mean := 0.0
	for i, c := range t.Counts {
		mean += float64(c) * t.Probabilities[i]
	}
	return mean
}

// OccurrenceVariance is E[X^2] - E[X]^2 over the discrete table.
func OccurrenceVariance(t risk.OccurrenceTable) float64 {
	mean := 0.0
	ex2 := 0.0
	for i, c := range t.Counts {
		n := float64(c)
		mean += n * t.Probabilities[i]
		ex2 += n * n * t.Probabilities[i]
	}
	return ex2 - mean*mean
}
