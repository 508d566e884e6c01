// Command riskcli runs the three engines over a worked example: a
// Monte Carlo ALE simulation, a two-phase screening analysis, and a
// control-deployment optimization. Useful as a smoke test and as a
// reference for the parameter shapes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"cyberrisk/adapters/excel"
	"cyberrisk/domain/controls"
	"cyberrisk/domain/probability"
	"cyberrisk/domain/risk"
	"cyberrisk/domain/run"
	"cyberrisk/internal/optimizer"
	jointanalysis "cyberrisk/internal/probability"
	"cyberrisk/internal/report"
	"cyberrisk/internal/simulation"
)

func main() {
	var (
		iterations = flag.Int("iterations", 50_000, "Monte Carlo iteration count")
		seed       = flag.Uint64("seed", 42, "random seed (0 for non-deterministic)")
		currency   = flag.String("currency", "GBP", "reporting currency (GBP, EUR, USD)")
		xlsxPath   = flag.String("xlsx", "", "optional path to export results as .xlsx")
		mdPath     = flag.String("report", "", "optional path to write the markdown risk brief")
		htmlPath   = flag.String("html", "", "optional path to write the risk brief as HTML")
	)
	flag.Parse()

	outcome := runSimulation(*iterations, *seed, *currency, *xlsxPath, *mdPath, *htmlPath)
	runJointAnalysis()
	runOptimization()

	fmt.Printf("\nDone. ALE: %s\n", report.FormatCurrency(outcome.Result.ALE, *currency))
}

func runSimulation(iterations int, seed uint64, currency, xlsxPath, mdPath, htmlPath string) simulation.Outcome {
	fmt.Println("=== Monte Carlo ALE Simulation ===")

	req := risk.SimulationRequest{
		AssetValue: risk.TriangularParams{Min: 50_000, Mode: 150_000, Max: 500_000},
		Occurrence: risk.OccurrenceTable{
			Counts:        []int{0, 1, 2, 3, 4, 5},
			Probabilities: []float64{0.3, 0.4, 0.2, 0.06, 0.03, 0.01},
		},
		Impact:     risk.ImpactParams{Mu: 9.2, Sigma: 1.0, Xm: 5_000, Alpha: 2.5},
		Iterations: iterations,
		Point1:     100_000,
		Point2:     50_000,
		Point3:     20_000,
		Point4:     100_000,
	}
	if seed != 0 {
		req.Seed = &seed
	}

	outcome, err := simulation.Run(req)
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
	res := outcome.Result

	fmt.Printf("P(asset value <= %s): %.4f\n", report.FormatCurrency(req.Point1, currency), res.Prob1)
	fmt.Printf("Mean asset value:     %s\n", report.FormatCurrency(res.MeanTriangular, currency))
	fmt.Printf("Median asset value:   %s\n", report.FormatCurrency(res.MedianTriangular, currency))
	fmt.Printf("Occurrences: mean %.4f, variance %.4f\n", res.MeanOccurrences, res.VarianceOccurrences)
	fmt.Printf("P(impact > %s): %.4f\n", report.FormatCurrency(req.Point2, currency), res.Prob2)
	fmt.Printf("P(impact in range): %.4f\n", res.Prob3)
	fmt.Printf("ALE: %s\n", report.FormatCurrency(res.ALE, currency))

	percentiles, err := simulation.PercentileSummary(outcome.TotalImpacts, nil)
	if err != nil {
		log.Fatalf("percentile summary failed: %v", err)
	}

	if mdPath != "" || htmlPath != "" {
		md := report.BuildMarkdown("Demo Scenario", res, percentiles, currency)
		if mdPath != "" {
			if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
				log.Fatalf("failed to write report: %v", err)
			}
			fmt.Printf("Markdown brief written to %s\n", mdPath)
		}
		if htmlPath != "" {
			if err := os.WriteFile(htmlPath, report.RenderHTML(md), 0o644); err != nil {
				log.Fatalf("failed to write HTML report: %v", err)
			}
			fmt.Printf("HTML brief written to %s\n", htmlPath)
		}
	}

	if xlsxPath != "" {
		rn := run.New(req, "Demo Scenario")
		rn.Results = &run.Results{ALEResult: res, Percentiles: percentiles, Currency: currency}
		if err := excel.ExportRun(xlsxPath, rn); err != nil {
			log.Fatalf("failed to export workbook: %v", err)
		}
		fmt.Printf("Workbook written to %s\n", xlsxPath)
	}

	return outcome
}

func runJointAnalysis() {
	fmt.Println("\n=== Two-Phase Screening Analysis ===")

	table := probability.JointTable{
		{25, 35, 20, 15},
		{30, 40, 25, 10},
		{15, 25, 30, 20},
	}
	probs := probability.TestProbabilities{0.8, 0.75, 0.7, 0.65, 0.6, 0.55}

	result, err := jointanalysis.Analyze(table.Total(), table, probs)
	if err != nil {
		log.Fatalf("joint analysis failed: %v", err)
	}
	fmt.Printf("P(3 <= X <= 4):       %.4f\n", result.Prob1)
	fmt.Printf("P(X + Y <= 10):       %.4f\n", result.Prob2)
	fmt.Printf("P(Y = 8 | T):         %.4f\n", result.Prob3)
}

func runOptimization() {
	fmt.Println("\n=== Control Deployment Optimization ===")

	in := controls.OptimizationInput{
		HistoricalData: [controls.NumControlTypes][controls.NumObservations]float64{
			{2, 3, 1, 4, 2, 3, 1, 2, 3},
			{1, 2, 3, 2, 1, 2, 3, 1, 2},
			{3, 2, 4, 1, 3, 2, 4, 3, 2},
			{1, 1, 2, 2, 1, 1, 2, 1, 1},
		},
		SafeguardEffects: [controls.NumObservations]float64{85, 78, 92, 70, 88, 82, 95, 87, 80},
		MaintenanceLoads: [controls.NumObservations]float64{45, 52, 38, 65, 42, 48, 35, 44, 50},
		CurrentControls:  [controls.NumControlTypes]int{2, 1, 3, 1},
		UnitCosts:        [controls.NumControlTypes]float64{10_000, 15_000, 8_000, 5_000},
		UpperBounds:      [controls.NumControlTypes]int{5, 4, 6, 3},
		SafeguardTarget:  90.0,
		MaintenanceLimit: 50.0,
	}

	result, err := optimizer.Optimize(in)
	if err != nil {
		log.Fatalf("optimization failed: %v", err)
	}

	names := [controls.NumControlTypes]string{"Firewalls", "IDS/IPS", "Endpoint Protection", "Security Training"}
	fmt.Printf("Safeguard weights:   %v\n", result.SafeguardWeights)
	fmt.Printf("Maintenance weights: %v\n", result.MaintenanceWeights)
	fmt.Printf("Current safeguard effect: %.2f (target %.2f)\n", result.CurrentSafeguardEffect, in.SafeguardTarget)
	fmt.Printf("Current maintenance load: %.2f (limit %.2f)\n", result.CurrentMaintenanceLoad, in.MaintenanceLimit)

	recs := optimizer.Recommendations(in.CurrentControls, result.AdditionalControls, names)
	if len(recs) == 0 {
		fmt.Println("No additional controls required.")
		return
	}
	for _, rec := range recs {
		cost := rec.RecommendedAdditional * in.UnitCosts[indexOf(names, rec.ControlName)]
		fmt.Printf("  %s: +%.2f units (%s), priority %s\n",
			rec.ControlName, rec.RecommendedAdditional, report.FormatCurrency(cost, "GBP"), rec.Priority)
	}
	fmt.Printf("Total additional investment: %s\n", report.FormatCurrency(result.TotalAdditionalCost, "GBP"))
}

func indexOf(names [controls.NumControlTypes]string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}
