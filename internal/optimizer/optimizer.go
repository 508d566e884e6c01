// Package optimizer fits linear models of control effectiveness and
// maintenance burden from historical deployments, then solves a linear
// program for the minimum-cost additional deployment that meets the
// safeguard target without exceeding the maintenance limit.
package optimizer

import (
	"cyberrisk/domain/controls"
)

// Optimize runs the full pipeline: two least-squares fits, gap
// computation against the current deployment, and the bounded LP.
// Failures propagate as RegressionError or OptimizationError; no
// partial result is returned.
func Optimize(in controls.OptimizationInput) (controls.OptimizationResult, error) {
	var result controls.OptimizationResult

	if err := in.Validate(); err != nil {
		return result, err
	}

	design := designMatrix(in.HistoricalData)
	safeguardWeights, err := leastSquares(design, in.SafeguardEffects[:])
	if err != nil {
		return result, err
	}
	maintenanceWeights, err := leastSquares(design, in.MaintenanceLoads[:])
	if err != nil {
		return result, err
	}

	var current [controls.NumControlTypes]float64
	for i, c := range in.CurrentControls {
		current[i] = float64(c)
	}
	currentSafeguard := predict(safeguardWeights, current)
	currentMaintenance := predict(maintenanceWeights, current)

	// Gaps the additional controls must cover.
	safeguardGap := in.SafeguardTarget - currentSafeguard
	maintenanceGap := in.MaintenanceLimit - currentMaintenance

	upper := make([]float64, controls.NumControlTypes)
	for i := range upper {
		room := in.UpperBounds[i] - in.CurrentControls[i]
		if room < 0 {
			room = 0
		}
		upper[i] = float64(room)
	}

	additional, err := solveBoundedLP(
		in.UnitCosts[:],
		safeguardWeights[1:],
		maintenanceWeights[1:],
		upper,
		safeguardGap,
		maintenanceGap,
	)
	if err != nil {
		return result, err
	}

	result.SafeguardWeights = safeguardWeights
	result.MaintenanceWeights = maintenanceWeights
	var projected [controls.NumControlTypes]float64
	for i := range additional {
		result.AdditionalControls[i] = additional[i]
		result.TotalAdditionalCost += additional[i] * in.UnitCosts[i]
		projected[i] = current[i] + additional[i]
	}
	result.CurrentSafeguardEffect = currentSafeguard
	result.CurrentMaintenanceLoad = currentMaintenance
	result.ProjectedSafeguardEffect = predict(safeguardWeights, projected)
	result.ProjectedMaintenanceLoad = predict(maintenanceWeights, projected)

	return result, nil
}
