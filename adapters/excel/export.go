// Package excel exports simulation results to .xlsx workbooks for the
// reporting layer.
package excel

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"cyberrisk/domain/run"
)

const resultsSheet = "ALE Results"

// ExportRun writes one completed simulation run to an .xlsx file with
// a metrics sheet and, when present, a percentile sheet.
func ExportRun(path string, rn *run.Run) error {
	if rn.Results == nil {
		return fmt.Errorf("run %s has no results to export", rn.ID)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	res := rn.Results
	rows := [][]interface{}{
		{"Scenario", rn.ScenarioName},
		{"Run ID", rn.ID.String()},
		{"Currency", res.Currency},
		{},
		{"Metric", "Value"},
		{"P(asset value <= point1)", res.Prob1},
		{"Mean asset value", res.MeanTriangular},
		{"Median asset value", res.MedianTriangular},
		{"Mean annual occurrences", res.MeanOccurrences},
		{"Occurrence variance", res.VarianceOccurrences},
		{"P(total impact > point2)", res.Prob2},
		{"P(point3 <= total impact <= point4)", res.Prob3},
		{"Annualized Loss Expectancy", res.ALE},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if len(res.Percentiles) > 0 {
		if err := writePercentiles(f, res.Percentiles); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writePercentiles(f *excelize.File, percentiles map[string]float64) error {
	const sheet = "Impact Percentiles"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create percentile sheet: %w", err)
	}

	keys := make([]string, 0, len(percentiles))
	for k := range percentiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	header := []interface{}{"Percentile", "Total Impact"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write percentile header: %w", err)
	}
	for i, k := range keys {
		row := []interface{}{k, percentiles[k]}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address percentile row: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write percentile row: %w", err)
		}
	}
	return nil
}
