package probability

import (
	"math"
	"testing"

	"cyberrisk/domain/probability"
)

func TestSummarize_DemoTable(t *testing.T) {
	summary, err := Summarize(demoTable)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if summary.Total != 290 {
		t.Errorf("Total = %d, want 290", summary.Total)
	}
	if summary.RowMarginals != [3]int{95, 105, 90} {
		t.Errorf("RowMarginals = %v, want [95 105 90]", summary.RowMarginals)
	}
	if summary.ColumnMarginals != [4]int{70, 100, 75, 45} {
		t.Errorf("ColumnMarginals = %v, want [70 100 75 45]", summary.ColumnMarginals)
	}

	rowSum := 0.0
	for _, p := range summary.RowProbabilities {
		rowSum += p
	}
	if math.Abs(rowSum-1.0) > floatTolerance {
		t.Errorf("row probabilities sum to %v, want 1", rowSum)
	}

	jointSum := 0.0
	for _, row := range summary.JointProbabilities {
		for _, p := range row {
			jointSum += p
		}
	}
	if math.Abs(jointSum-1.0) > floatTolerance {
		t.Errorf("joint probabilities sum to %v, want 1", jointSum)
	}
}

func TestSummarize_EmptyTable(t *testing.T) {
	var empty probability.JointTable
	if _, err := Summarize(empty); err == nil {
		t.Error("expected an error for an empty table")
	}
}

func TestConditional(t *testing.T) {
	got, err := Conditional(0.1, 0.4)
	if err != nil {
		t.Fatalf("Conditional failed: %v", err)
	}
	if math.Abs(got-0.25) > floatTolerance {
		t.Errorf("Conditional(0.1, 0.4) = %v, want 0.25", got)
	}

	if _, err := Conditional(0.1, 0); err == nil {
		t.Error("expected an error for a zero marginal")
	}
}

func TestBayesPosterior(t *testing.T) {
	// P(A|B) = P(B|A) P(A) / P(B) = 0.9 * 0.2 / 0.3 = 0.6.
	got, err := BayesPosterior(0.2, 0.9, 0.3)
	if err != nil {
		t.Fatalf("BayesPosterior failed: %v", err)
	}
	if math.Abs(got-0.6) > floatTolerance {
		t.Errorf("posterior = %v, want 0.6", got)
	}

	if _, err := BayesPosterior(0.2, 0.9, 0); err == nil {
		t.Error("expected an error for zero evidence")
	}
}
