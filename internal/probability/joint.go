// Package probability implements the two-phase screening analyzer:
// marginal range probabilities over a 3x4 contingency table and a
// Bayes-theorem posterior for the unknown conditional P(T|Y=8).
package probability

import (
	"cyberrisk/domain/core"
	"cyberrisk/domain/probability"
)

// Analyze derives the three probabilities of the screening analysis:
//
//	prob1 = P(3 <= X <= 4)
//	prob2 = P(X + Y <= 10)
//	prob3 = P(Y = 8 | T)
//
// testProbs supplies P(T|X=2..5), P(T|Y=6), P(T|Y=7); P(T|Y=8) is
// solved from the law of total probability on both axes, then Bayes'
// theorem yields the posterior. Zero totals or marginals surface as
// DegenerateInputError rather than being clamped.
func Analyze(total int, table probability.JointTable, testProbs probability.TestProbabilities) (probability.JointResult, error) {
	if err := table.Validate(total); err != nil {
		return probability.JointResult{}, err
	}
	if err := testProbs.Validate(); err != nil {
		return probability.JointResult{}, err
	}
	if total == 0 {
		return probability.JointResult{}, core.NewDegenerateInputError("table total is zero")
	}

	cols := table.ColumnMarginals() // X2..X5
	rows := table.RowMarginals()    // Y6..Y8
	for _, m := range cols {
		if m == 0 {
			return probability.JointResult{}, core.NewDegenerateInputError("zero column marginal")
		}
	}
	for _, m := range rows {
		if m == 0 {
			return probability.JointResult{}, core.NewDegenerateInputError("zero row marginal")
		}
	}

	n := float64(total)

	// prob1: P(3 <= X <= 4) from the X3 and X4 column marginals.
	prob1 := float64(cols[1]+cols[2]) / n

	// prob2: P(X + Y <= 10). Over the value sets {2..5} x {6..8} the
	// qualifying cells are exactly (2,6) (2,7) (2,8) (3,6) (3,7) (4,6).
	qualifying := table[0][0] + table[1][0] + table[2][0] +
		table[0][1] + table[1][1] +
		table[0][2]
	prob2 := float64(qualifying) / n

	// Law of total probability on the X side gives P(T).
	ptX := 0.0
	for j, m := range cols {
		ptX += testProbs[j] * float64(m)
	}
	ptX /= n
	if ptX == 0 {
		return probability.JointResult{}, core.NewDegenerateInputError("total test probability is zero")
	}

	// Equate the Y-side expansion of P(T) and solve for P(T|Y=8),
	// then apply Bayes' theorem for the posterior P(Y=8|T).
	py6 := testProbs[4]
	py7 := testProbs[5]
	y8Frac := float64(rows[2]) / n
	ptGivenY8 := (ptX - (py6*float64(rows[0])+py7*float64(rows[1]))/n) / y8Frac
	prob3 := (ptGivenY8 * y8Frac) / ptX

	return probability.JointResult{Prob1: prob1, Prob2: prob2, Prob3: prob3}, nil
}
