package probability

import (
	"cyberrisk/domain/core"
	"cyberrisk/domain/probability"
)

// MarginalSummary describes a joint table as marginal counts and
// probabilities plus the normalized joint matrix.
type MarginalSummary struct {
	Total              int                                              `json:"total"`
	RowMarginals       [probability.NumRows]int                         `json:"row_marginals"`
	ColumnMarginals    [probability.NumCols]int                         `json:"column_marginals"`
	RowProbabilities   [probability.NumRows]float64                     `json:"row_probabilities"`
	ColProbabilities   [probability.NumCols]float64                     `json:"col_probabilities"`
	JointProbabilities [probability.NumRows][probability.NumCols]float64 `json:"joint_probabilities"`
}

// Summarize computes marginal distributions of a joint table.
func Summarize(table probability.JointTable) (MarginalSummary, error) {
	total := table.Total()
	if total == 0 {
		return MarginalSummary{}, core.NewDegenerateInputError("table total is zero")
	}

	summary := MarginalSummary{
		Total:           total,
		RowMarginals:    table.RowMarginals(),
		ColumnMarginals: table.ColumnMarginals(),
	}
	n := float64(total)
	for i, m := range summary.RowMarginals {
		summary.RowProbabilities[i] = float64(m) / n
	}
	for j, m := range summary.ColumnMarginals {
		summary.ColProbabilities[j] = float64(m) / n
	}
	for i, row := range table {
		for j, cell := range row {
			summary.JointProbabilities[i][j] = float64(cell) / n
		}
	}
	return summary, nil
}

// Conditional computes P(A|B) = P(A,B) / P(B).
func Conditional(joint, marginal float64) (float64, error) {
	if marginal == 0 {
		return 0, core.NewDegenerateInputError("marginal probability is zero")
	}
	return joint / marginal, nil
}

// BayesPosterior applies Bayes' theorem, P(A|B) = P(B|A)P(A) / P(B).
func BayesPosterior(prior, likelihood, evidence float64) (float64, error) {
	if evidence == 0 {
		return 0, core.NewDegenerateInputError("evidence probability is zero")
	}
	return likelihood * prior / evidence, nil
}
