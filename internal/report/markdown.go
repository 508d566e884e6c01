package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"cyberrisk/domain/risk"
)

// BuildMarkdown renders an ALE result and its percentile summary as a
// markdown risk brief.
func BuildMarkdown(scenario string, result risk.ALEResult, percentiles map[string]float64, currency string) string {
	var b strings.Builder

	if scenario == "" {
		scenario = "Unnamed Scenario"
	}
	fmt.Fprintf(&b, "# Cyber Risk Assessment: %s\n\n", scenario)

	b.WriteString("## Annualized Loss Expectancy\n\n")
	fmt.Fprintf(&b, "**ALE: %s**\n\n", FormatCurrency(result.ALE, currency))

	b.WriteString("## Asset Value (Triangular Model)\n\n")
	fmt.Fprintf(&b, "- P(asset value below threshold): %.4f\n", result.Prob1)
	fmt.Fprintf(&b, "- Mean asset value: %s\n", FormatCurrency(result.MeanTriangular, currency))
	fmt.Fprintf(&b, "- Median asset value: %s\n\n", FormatCurrency(result.MedianTriangular, currency))

	b.WriteString("## Annual Occurrences\n\n")
	fmt.Fprintf(&b, "- Expected incidents per year: %.4f\n", result.MeanOccurrences)
	fmt.Fprintf(&b, "- Variance: %.4f\n\n", result.VarianceOccurrences)

	b.WriteString("## Impact Probabilities\n\n")
	fmt.Fprintf(&b, "- P(total impact above threshold): %.4f\n", result.Prob2)
	fmt.Fprintf(&b, "- P(total impact within range): %.4f\n", result.Prob3)

	if len(percentiles) > 0 {
		b.WriteString("\n## Total Impact Percentiles\n\n")
		keys := make([]string, 0, len(percentiles))
		for k := range percentiles {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %s\n", k, FormatCurrency(percentiles[k], currency))
		}
	}

	return b.String()
}

// RenderHTML converts a markdown brief to HTML.
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}
