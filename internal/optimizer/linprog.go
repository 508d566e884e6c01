package optimizer

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"cyberrisk/domain/core"
)

// lpTolerance is the simplex optimality tolerance.
const lpTolerance = 1e-10

// solveBoundedLP minimizes cost . x subject to
//
//	safeguard . x >= safeguardGap
//	maintenance . x <= maintenanceGap
//	0 <= x[i] <= upper[i]
//
// by assembling the standard form (A x = b, x >= 0) with one slack
// variable per inequality and handing it to the simplex solver.
func solveBoundedLP(cost, safeguard, maintenance, upper []float64, safeguardGap, maintenanceGap float64) ([]float64, error) {
	n := len(cost)
	rows := 2 + n
	cols := n + rows

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)

	// Safeguard constraint, negated into <= form: -s . x <= -gap.
	for j := 0; j < n; j++ {
		a.Set(0, j, -safeguard[j])
	}
	a.Set(0, n, 1.0)
	b[0] = -safeguardGap

	// Maintenance constraint: m . x <= gap.
	for j := 0; j < n; j++ {
		a.Set(1, j, maintenance[j])
	}
	a.Set(1, n+1, 1.0)
	b[1] = maintenanceGap

	// Upper bounds: x[i] + u[i] = upper[i].
	for i := 0; i < n; i++ {
		a.Set(2+i, i, 1.0)
		a.Set(2+i, n+2+i, 1.0)
		b[2+i] = upper[i]
	}

	// The simplex phase-1 expects non-negative right-hand sides;
	// equality rows may be negated freely.
	for i := 0; i < rows; i++ {
		if b[i] < 0 {
			b[i] = -b[i]
			for j := 0; j < cols; j++ {
				a.Set(i, j, -a.At(i, j))
			}
		}
	}

	objective := make([]float64, cols)
	copy(objective, cost)

	_, x, err := lp.Simplex(objective, a, b, lpTolerance, nil)
	if err != nil {
		return nil, core.NewOptimizationError(solverStatus(err), err)
	}
	return x[:n], nil
}

// solverStatus labels the simplex failure mode for the error message.
func solverStatus(err error) string {
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return "infeasible"
	case errors.Is(err, lp.ErrUnbounded):
		return "unbounded"
	case errors.Is(err, lp.ErrSingular):
		return "singular"
	default:
		return "solver failure"
	}
}
