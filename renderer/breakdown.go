package renderer

import (
	"github.com/sdiallo/boutique"
)

// BreakdownMarkdown renders the per-category expense breakdown.
func BreakdownMarkdown(lines []boutique.CategoryAmount) string {
	r := newRenderer()

	r.Printf("# Expense Breakdown\n\n")
	r.Printf("| Category | Amount | Share |\n")
	r.Printf("|:---|---:|---:|\n")
	var total boutique.Money
	for _, line := range lines {
		if line.Amount.IsZero() {
			continue
		}
		r.Printf("| %s | %s | %s |\n", line.Category, line.Amount, line.Share)
		total = total.Add(line.Amount)
	}
	r.Printf("| **Total** | **%s** | |\n", total)

	return r.String()
}
