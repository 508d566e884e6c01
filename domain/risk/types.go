package risk

import (
	"math"

	"cyberrisk/domain/core"
)

// probSumTolerance is how far an occurrence probability table may
// drift from summing to exactly 1.0 before it is rejected.
const probSumTolerance = 1e-3

// TriangularParams models an uncertain asset value as a
// Triangular(min, mode, max) distribution. Immutable once built.
type TriangularParams struct {
	Min  float64 `json:"min"`
	Mode float64 `json:"mode"`
	Max  float64 `json:"max"`
}

// Validate enforces min <= mode <= max and min < max. A mode equal to
// either bound makes the CDF piecewise-degenerate, so both inequalities
// against the mode are strict.
func (p TriangularParams) Validate() error {
	if math.IsNaN(p.Min) || math.IsNaN(p.Mode) || math.IsNaN(p.Max) {
		return core.NewParameterError("asset_value", "bounds must be numeric")
	}
	if p.Min >= p.Max {
		return core.NewParameterError("asset_value", "min must be strictly less than max")
	}
	if p.Mode <= p.Min || p.Mode >= p.Max {
		return core.NewParameterError("asset_value", "mode must lie strictly between min and max")
	}
	return nil
}

// OccurrenceTable is a discrete distribution over annual incident
// counts. Counts and Probabilities are parallel arrays; order is
// semantically meaningful (Counts[i] pairs with Probabilities[i]).
type OccurrenceTable struct {
	Counts        []int     `json:"counts"`
	Probabilities []float64 `json:"probabilities"`
}

// Validate checks the parallel arrays line up, each probability is
// non-negative, and the probabilities sum to ~1 (tolerance 1e-3).
func (t OccurrenceTable) Validate() error {
	if len(t.Counts) == 0 {
		return core.NewParameterError("occurrence", "counts must not be empty")
	}
	if len(t.Counts) != len(t.Probabilities) {
		return core.NewParameterError("occurrence", "counts and probabilities must have the same length")
	}
	sum := 0.0
	for i, p := range t.Probabilities {
		if p < 0 {
			return core.NewParameterError("occurrence", "probabilities must be non-negative")
		}
		if t.Counts[i] < 0 {
			return core.NewParameterError("occurrence", "counts must be non-negative")
		}
		sum += p
	}
	if math.Abs(sum-1.0) > probSumTolerance {
		return core.NewParameterError("occurrence", "probabilities must sum to 1.0")
	}
	return nil
}

// ImpactParams describes the two loss-magnitude components:
// flaw A is log-normal(Mu, Sigma), flaw B is Pareto(Xm, Alpha).
type ImpactParams struct {
	Mu    float64 `json:"mu"`
	Sigma float64 `json:"sigma"`
	Xm    float64 `json:"xm"`
	Alpha float64 `json:"alpha"`
}

func (p ImpactParams) Validate() error {
	if p.Sigma <= 0 {
		return core.NewParameterError("impact", "sigma must be positive")
	}
	if p.Xm <= 0 {
		return core.NewParameterError("impact", "xm must be positive")
	}
	if p.Alpha <= 0 {
		return core.NewParameterError("impact", "alpha must be positive")
	}
	return nil
}

// SimulationRequest carries every parameter of one ALE simulation.
// It is created once by the caller and consumed read-only.
type SimulationRequest struct {
	AssetValue TriangularParams `json:"asset_value"`
	Occurrence OccurrenceTable  `json:"occurrence"`
	Impact     ImpactParams     `json:"impact"`

	// Iterations is the Monte Carlo sample count, at least 1.
	Iterations int `json:"iterations"`

	// Point1 thresholds P(asset value <= Point1).
	// Point2 thresholds P(total impact > Point2).
	// Point3..Point4 bound P(Point3 <= total impact <= Point4).
	Point1 float64 `json:"point1"`
	Point2 float64 `json:"point2"`
	Point3 float64 `json:"point3"`
	Point4 float64 `json:"point4"`

	// Seed, when set, makes the run bit-reproducible.
	Seed *uint64 `json:"seed,omitempty"`
}

// Validate fails fast before any sampling begins.
func (r SimulationRequest) Validate() error {
	if err := r.AssetValue.Validate(); err != nil {
		return err
	}
	if err := r.Occurrence.Validate(); err != nil {
		return err
	}
	if err := r.Impact.Validate(); err != nil {
		return err
	}
	if r.Iterations < 1 {
		return core.NewParameterError("iterations", "must be at least 1")
	}
	if r.Point3 > r.Point4 {
		return core.NewParameterError("points", "point3 must not exceed point4")
	}
	return nil
}

// Fingerprint identifies the request parameters; two requests with the
// same fingerprint and the same seed produce bit-identical results.
func (r SimulationRequest) Fingerprint() core.Hash {
	return core.Fingerprint(r)
}

// ALEResult is the fixed-shape outcome of one simulation run. The
// field order mirrors the legacy 8-tuple contract
// (prob1, mean_t, median_t, mean_d, var_d, prob2, prob3, ale);
// downstream consumers index positionally, so the order is stable.
type ALEResult struct {
	Prob1               float64 `json:"prob1"`
	MeanTriangular      float64 `json:"mean_triangular"`
	MedianTriangular    float64 `json:"median_triangular"`
	MeanOccurrences     float64 `json:"mean_occurrences"`
	VarianceOccurrences float64 `json:"variance_occurrences"`
	Prob2               float64 `json:"prob2"`
	Prob3               float64 `json:"prob3"`
	ALE                 float64 `json:"ale"`
}
