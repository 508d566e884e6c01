// Package controls holds the value types of the control-deployment
// optimizer: historical deployment observations, regression targets,
// and the minimum-cost additional deployment result.
package controls

import "cyberrisk/domain/core"

const (
	// NumControlTypes is the number of control categories (the LP's
	// decision variables).
	NumControlTypes = 4
	// NumObservations is the number of historical deployment
	// observations backing the regression.
	NumObservations = 9
	// NumWeights is intercept + one coefficient per control type.
	NumWeights = NumControlTypes + 1
)

// OptimizationInput carries everything one optimization call needs.
// HistoricalData rows are control types, columns are observations.
type OptimizationInput struct {
	HistoricalData   [NumControlTypes][NumObservations]float64 `json:"historical_data"`
	SafeguardEffects [NumObservations]float64                  `json:"safeguard_effects"`
	MaintenanceLoads [NumObservations]float64                  `json:"maintenance_loads"`
	CurrentControls  [NumControlTypes]int                      `json:"current_controls"`
	UnitCosts        [NumControlTypes]float64                  `json:"unit_costs"`
	UpperBounds      [NumControlTypes]int                      `json:"upper_bounds"`
	SafeguardTarget  float64                                   `json:"safeguard_target"`
	MaintenanceLimit float64                                   `json:"maintenance_limit"`
}

// Validate enforces the deployment invariants: non-negative current
// counts and costs, and current_controls[i] <= upper_bounds[i].
func (in OptimizationInput) Validate() error {
	for i := 0; i < NumControlTypes; i++ {
		if in.CurrentControls[i] < 0 {
			return core.NewParameterError("current_controls", "counts must be non-negative")
		}
		if in.UnitCosts[i] < 0 {
			return core.NewParameterError("unit_costs", "costs must be non-negative")
		}
		if in.CurrentControls[i] > in.UpperBounds[i] {
			return core.NewParameterError("upper_bounds", "current deployment exceeds upper bound")
		}
	}
	return nil
}

// OptimizationResult is produced once per call and read-only after.
// Weight vectors are [intercept, coef1..coef4].
type OptimizationResult struct {
	SafeguardWeights   [NumWeights]float64      `json:"safeguard_weights"`
	MaintenanceWeights [NumWeights]float64      `json:"maintenance_weights"`
	AdditionalControls [NumControlTypes]float64 `json:"additional_controls"`

	CurrentSafeguardEffect   float64 `json:"current_safeguard_effect"`
	ProjectedSafeguardEffect float64 `json:"projected_safeguard_effect"`
	CurrentMaintenanceLoad   float64 `json:"current_maintenance_load"`
	ProjectedMaintenanceLoad float64 `json:"projected_maintenance_load"`
	TotalAdditionalCost      float64 `json:"total_additional_cost"`
}
