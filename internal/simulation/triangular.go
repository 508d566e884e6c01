package simulation

import (
	"math"

	"cyberrisk/domain/risk"
)

// medianModeTolerance decides when F(mode) is close enough to 0.5 that
// the median is the mode itself.
const medianModeTolerance = 1e-15

// TriangularCDF evaluates the piecewise quadratic CDF of
// Triangular(min, mode, max) at x. The caller must supply validated
// parameters; mode equal to min or max divides by zero.
func TriangularCDF(p risk.TriangularParams, x float64) float64 {
	switch {
	case x <= p.Min:
		return 0.0
	case x <= p.Mode:
		return (x - p.Min) * (x - p.Min) / ((p.Max - p.Min) * (p.Mode - p.Min))
	case x <= p.Max:
		return 1.0 - (p.Max-x)*(p.Max-x)/((p.Max-p.Min)*(p.Max-p.Mode))
	default:
		return 1.0
	}
}

// TriangularMean is (min + mode + max) / 3.
func TriangularMean(p risk.TriangularParams) float64 {
	return (p.Min + p.Mode + p.Max) / 3.0
}

// TriangularMedian locates the median by comparing F(mode) to 0.5:
// when more than half the mass lies left of the mode the median is on
// [min, mode], otherwise on [mode, max].
func TriangularMedian(p risk.TriangularParams) float64 {
	fMode := (p.Mode - p.Min) / (p.Max - p.Min)
	switch {
	case math.Abs(fMode-0.5) < medianModeTolerance:
		return p.Mode
	case fMode > 0.5:
		return p.Min + math.Sqrt(0.5*(p.Max-p.Min)*(p.Mode-p.Min))
	default:
		return p.Max - math.Sqrt(0.5*(p.Max-p.Min)*(p.Max-p.Mode))
	}
}
