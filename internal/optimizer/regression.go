package optimizer

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"cyberrisk/domain/controls"
	"cyberrisk/domain/core"
)

// machineEpsilon is the float64 unit roundoff, used for the singular
// value cutoff.
const machineEpsilon = 2.220446049250313e-16

// designMatrix builds the 9x5 least-squares design matrix: a leading
// intercept column followed by the historical data transposed to one
// observation per row.
func designMatrix(history [controls.NumControlTypes][controls.NumObservations]float64) *mat.Dense {
	design := mat.NewDense(controls.NumObservations, controls.NumWeights, nil)
	for i := 0; i < controls.NumObservations; i++ {
		design.Set(i, 0, 1.0)
		for j := 0; j < controls.NumControlTypes; j++ {
			design.Set(i, j+1, history[j][i])
		}
	}
	return design
}

// leastSquares solves design * w = target in the least-squares sense
// via a thin SVD, returning the minimum-norm solution. Historical
// deployment matrices are routinely rank-deficient (control counts move
// together), so singular values below max(m,n) * eps * s_max are
// treated as zero rather than failing the fit.
func leastSquares(design *mat.Dense, target []float64) ([controls.NumWeights]float64, error) {
	var weights [controls.NumWeights]float64

	var svd mat.SVD
	if ok := svd.Factorize(design, mat.SVDThin); !ok {
		return weights, core.NewRegressionError(errors.New("SVD did not converge"))
	}

	rows, cols := design.Dims()
	sv := svd.Values(nil)
	dim := rows
	if cols > dim {
		dim = cols
	}
	tol := float64(dim) * machineEpsilon * sv[0]

	rank := 0
	for _, s := range sv {
		if s > tol {
			rank++
		}
	}
	if rank == 0 {
		return weights, core.NewRegressionError(errors.New("design matrix has rank zero"))
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// w = V * diag(1/s) * U^T * target over the retained rank.
	coef := make([]float64, rank)
	for j := 0; j < rank; j++ {
		dot := 0.0
		for i := 0; i < rows; i++ {
			dot += u.At(i, j) * target[i]
		}
		coef[j] = dot / sv[j]
	}
	for i := 0; i < controls.NumWeights; i++ {
		w := 0.0
		for j := 0; j < rank; j++ {
			w += v.At(i, j) * coef[j]
		}
		weights[i] = w
	}
	return weights, nil
}

// predict evaluates intercept + coefficients . deployment.
func predict(weights [controls.NumWeights]float64, deployment [controls.NumControlTypes]float64) float64 {
	v := weights[0]
	for i := 0; i < controls.NumControlTypes; i++ {
		v += weights[i+1] * deployment[i]
	}
	return v
}
