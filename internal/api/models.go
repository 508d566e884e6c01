package api

import (
	"cyberrisk/domain/controls"
	"cyberrisk/domain/core"
	"cyberrisk/domain/probability"
	"cyberrisk/domain/risk"
)

// SimulateRequest is the wire form of a simulation submission. Field
// names follow the legacy API contract.
type SimulateRequest struct {
	AssetValueMin  float64 `json:"asset_value_min" binding:"required"`
	AssetValueMode float64 `json:"asset_value_mode" binding:"required"`
	AssetValueMax  float64 `json:"asset_value_max" binding:"required"`

	OccurrenceCounts        []int     `json:"occurrence_counts" binding:"required"`
	OccurrenceProbabilities []float64 `json:"occurrence_probabilities" binding:"required"`

	Iterations int `json:"iterations" binding:"required"`

	// FlawAMu carries no binding rule: zero and negative mu are valid
	// log-normal locations.
	FlawAMu    float64 `json:"flaw_a_mu"`
	FlawASigma float64 `json:"flaw_a_sigma" binding:"required"`
	FlawBScale float64 `json:"flaw_b_scale" binding:"required"`
	FlawBAlpha float64 `json:"flaw_b_alpha" binding:"required"`

	ThresholdPoint1 float64 `json:"threshold_point1" binding:"required"`
	ThresholdPoint2 float64 `json:"threshold_point2" binding:"required"`
	RangePoint3     float64 `json:"range_point3"`
	RangePoint4     float64 `json:"range_point4"`

	ScenarioName string  `json:"scenario_name"`
	RandomSeed   *uint64 `json:"random_seed"`
}

// ToDomain converts the wire form into the engine's typed request.
func (r SimulateRequest) ToDomain() risk.SimulationRequest {
	return risk.SimulationRequest{
		AssetValue: risk.TriangularParams{
			Min:  r.AssetValueMin,
			Mode: r.AssetValueMode,
			Max:  r.AssetValueMax,
		},
		Occurrence: risk.OccurrenceTable{
			Counts:        r.OccurrenceCounts,
			Probabilities: r.OccurrenceProbabilities,
		},
		Impact: risk.ImpactParams{
			Mu:    r.FlawAMu,
			Sigma: r.FlawASigma,
			Xm:    r.FlawBScale,
			Alpha: r.FlawBAlpha,
		},
		Iterations: r.Iterations,
		Point1:     r.ThresholdPoint1,
		Point2:     r.ThresholdPoint2,
		Point3:     r.RangePoint3,
		Point4:     r.RangePoint4,
		Seed:       r.RandomSeed,
	}
}

// AnalyzeRequest is the wire form of a joint-probability analysis.
type AnalyzeRequest struct {
	TotalCases        int       `json:"total_cases" binding:"required"`
	Table             [][]int   `json:"table" binding:"required"`
	TestProbabilities []float64 `json:"test_probabilities" binding:"required"`
}

// ToDomain converts and shape-checks the wire table.
func (r AnalyzeRequest) ToDomain() (int, probability.JointTable, probability.TestProbabilities, error) {
	var table probability.JointTable
	var probs probability.TestProbabilities

	if len(r.Table) != probability.NumRows {
		return 0, table, probs, core.NewParameterError("table", "must have exactly 3 rows")
	}
	for i, row := range r.Table {
		if len(row) != probability.NumCols {
			return 0, table, probs, core.NewParameterError("table", "each row must have exactly 4 columns")
		}
		copy(table[i][:], row)
	}
	if len(r.TestProbabilities) != len(probs) {
		return 0, table, probs, core.NewParameterError("test_probabilities", "must have exactly 6 values")
	}
	copy(probs[:], r.TestProbabilities)
	return r.TotalCases, table, probs, nil
}

// OptimizeRequest is the wire form of a control optimization.
type OptimizeRequest struct {
	HistoricalData   [][]float64 `json:"historical_data" binding:"required"`
	SafeguardEffects []float64   `json:"safeguard_effects" binding:"required"`
	MaintenanceLoads []float64   `json:"maintenance_loads" binding:"required"`
	CurrentControls  []int       `json:"current_controls" binding:"required"`
	ControlCosts     []float64   `json:"control_costs" binding:"required"`
	ControlLimits    []int       `json:"control_limits" binding:"required"`
	// The target and limit accept zero, so neither carries a binding
	// rule; feasibility is the solver's call.
	SafeguardTarget  float64 `json:"safeguard_target"`
	MaintenanceLimit float64 `json:"maintenance_limit"`

	ControlNames []string `json:"control_names"`
}

// ToDomain converts and shape-checks the wire matrices.
func (r OptimizeRequest) ToDomain() (controls.OptimizationInput, error) {
	var in controls.OptimizationInput

	if len(r.HistoricalData) != controls.NumControlTypes {
		return in, core.NewParameterError("historical_data", "must have exactly 4 rows")
	}
	for i, row := range r.HistoricalData {
		if len(row) != controls.NumObservations {
			return in, core.NewParameterError("historical_data", "each row must have exactly 9 observations")
		}
		copy(in.HistoricalData[i][:], row)
	}
	if len(r.SafeguardEffects) != controls.NumObservations {
		return in, core.NewParameterError("safeguard_effects", "must have exactly 9 values")
	}
	copy(in.SafeguardEffects[:], r.SafeguardEffects)
	if len(r.MaintenanceLoads) != controls.NumObservations {
		return in, core.NewParameterError("maintenance_loads", "must have exactly 9 values")
	}
	copy(in.MaintenanceLoads[:], r.MaintenanceLoads)
	if len(r.CurrentControls) != controls.NumControlTypes {
		return in, core.NewParameterError("current_controls", "must have exactly 4 values")
	}
	copy(in.CurrentControls[:], r.CurrentControls)
	if len(r.ControlCosts) != controls.NumControlTypes {
		return in, core.NewParameterError("control_costs", "must have exactly 4 values")
	}
	copy(in.UnitCosts[:], r.ControlCosts)
	if len(r.ControlLimits) != controls.NumControlTypes {
		return in, core.NewParameterError("control_limits", "must have exactly 4 values")
	}
	copy(in.UpperBounds[:], r.ControlLimits)

	in.SafeguardTarget = r.SafeguardTarget
	in.MaintenanceLimit = r.MaintenanceLimit
	return in, nil
}

// Names returns the supplied control names padded with defaults.
func (r OptimizeRequest) Names() [controls.NumControlTypes]string {
	var names [controls.NumControlTypes]string
	for i := range names {
		if i < len(r.ControlNames) && r.ControlNames[i] != "" {
			names[i] = r.ControlNames[i]
		} else {
			names[i] = defaultControlName(i)
		}
	}
	return names
}

func defaultControlName(i int) string {
	return [controls.NumControlTypes]string{
		"Control Type 1", "Control Type 2", "Control Type 3", "Control Type 4",
	}[i]
}
