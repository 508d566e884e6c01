// Package probability holds the value types of the two-phase screening
// analysis: a 3x4 joint contingency table over X in {2..5} and
// Y in {6..8}, the conditional test probabilities, and the derived
// range/posterior probabilities.
package probability

import "cyberrisk/domain/core"

// Table dimensions. Rows are Y values 6..8, columns are X values 2..5.
const (
	NumRows = 3
	NumCols = 4
)

// Label offsets for the row/column value sets.
const (
	MinX = 2
	MinY = 6
)

// JointTable is a 3x4 matrix of non-negative case counts.
type JointTable [NumRows][NumCols]int

// Validate rejects negative cells and checks the declared total
// matches the cell sum.
func (t JointTable) Validate(total int) error {
	sum := 0
	for _, row := range t {
		for _, cell := range row {
			if cell < 0 {
				return core.NewDegenerateInputError("table cells must be non-negative")
			}
			sum += cell
		}
	}
	if sum != total {
		return core.NewDegenerateInputError("declared total does not match table cell sum")
	}
	return nil
}

// Total sums every cell.
func (t JointTable) Total() int {
	sum := 0
	for _, row := range t {
		for _, cell := range row {
			sum += cell
		}
	}
	return sum
}

// RowMarginals returns the Y marginals [Y6, Y7, Y8].
func (t JointTable) RowMarginals() [NumRows]int {
	var m [NumRows]int
	for i, row := range t {
		for _, cell := range row {
			m[i] += cell
		}
	}
	return m
}

// ColumnMarginals returns the X marginals [X2, X3, X4, X5].
func (t JointTable) ColumnMarginals() [NumCols]int {
	var m [NumCols]int
	for _, row := range t {
		for j, cell := range row {
			m[j] += cell
		}
	}
	return m
}

// TestProbabilities are the six known conditionals, in order:
// P(T|X=2), P(T|X=3), P(T|X=4), P(T|X=5), P(T|Y=6), P(T|Y=7).
// P(T|Y=8) is the unknown the analyzer solves for.
type TestProbabilities [6]float64

func (p TestProbabilities) Validate() error {
	for _, v := range p {
		if v < 0 || v > 1 {
			return core.NewParameterError("test_probabilities", "each probability must lie in [0,1]")
		}
	}
	return nil
}

// JointResult is the analyzer's 3-tuple outcome, order fixed:
// prob1 = P(3 <= X <= 4), prob2 = P(X+Y <= 10), prob3 = P(Y=8 | T).
type JointResult struct {
	Prob1 float64 `json:"prob1"`
	Prob2 float64 `json:"prob2"`
	Prob3 float64 `json:"prob3"`
}
