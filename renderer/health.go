package renderer

import (
	"fmt"

	"github.com/sdiallo/boutique"
)

// HealthMarkdown renders the business health verdict with its underlying
// signals.
func HealthMarkdown(h boutique.Health) string {
	r := newRenderer()

	r.Printf("# Business Health: %s / 10\n\n", formatScore(h.Score))
	r.Printf("%s\n\n", h.Message)

	r.Printf("| Signal | Value |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| 7-Day Trend | %s |\n", trendArrow(h.Trend))
	r.Printf("| Expense Ratio | %.0f%% |\n", h.Ratio*100)
	r.Printf("| Days Without Entries | %d of 7 |\n", h.Missing)
	r.Printf("| Weekly Growth | %s |\n", h.Growth.SignedString())

	return r.String()
}

// formatScore prints a score without a trailing ".0" on whole values.
func formatScore(score float64) string {
	if score == float64(int(score)) {
		return fmt.Sprintf("%.0f", score)
	}
	return fmt.Sprintf("%.1f", score)
}
