package simulation

import "cyberrisk/domain/risk"

// Outcome bundles the fixed ALE tuple with the raw total-impact sample
// so callers can derive percentile summaries without re-running.
type Outcome struct {
	Result       risk.ALEResult
	TotalImpacts []float64
}

// Run validates the request, evaluates the triangular and occurrence
// models, draws the Monte Carlo total-impact sample, and assembles the
// ALE result. Validation happens before any sampling; on error no
// partial result is returned.
func Run(req risk.SimulationRequest) (Outcome, error) {
	if err := req.Validate(); err != nil {
		return Outcome{}, err
	}

	prob1 := TriangularCDF(req.AssetValue, req.Point1)
	meanT := TriangularMean(req.AssetValue)
	medianT := TriangularMedian(req.AssetValue)

	meanD := OccurrenceMean(req.Occurrence)
	varD := OccurrenceVariance(req.Occurrence)

	sampler := NewImpactSampler(req.Impact, req.Seed)
	impacts := sampler.SampleN(req.Iterations)

	above := 0
	within := 0
	for _, v := range impacts {
		if v > req.Point2 {
			above++
		}
		if v >= req.Point3 && v <= req.Point4 {
			within++
		}
	}
	prob2 := float64(above) / float64(req.Iterations)
	prob3 := float64(within) / float64(req.Iterations)

	// ALE = ARO * SLE with SLE approximated as median asset value times
	// the probability of a large impact. This is the legacy contract,
	// not a full loss convolution; keep the formula exactly.
	ale := meanD * (medianT * prob2)

	return Outcome{
		Result: risk.ALEResult{
			Prob1:               prob1,
			MeanTriangular:      meanT,
			MedianTriangular:    medianT,
			MeanOccurrences:     meanD,
			VarianceOccurrences: varD,
			Prob2:               prob2,
			Prob3:               prob3,
			ALE:                 ale,
		},
		TotalImpacts: impacts,
	}, nil
}

// Simulate is the library boundary for callers that only need the
// 8-field result tuple.
func Simulate(req risk.SimulationRequest) (risk.ALEResult, error) {
	outcome, err := Run(req)
	if err != nil {
		return risk.ALEResult{}, err
	}
	return outcome.Result, nil
}
