package renderer

import (
	"fmt"
	"io"

	"github.com/sdiallo/boutique"
)

// MonthlyMarkdown renders the one-month review.
func MonthlyMarkdown(s *boutique.MonthSummary) string {
	r := newRenderer()

	r.Printf("# Monthly Review: %s\n\n", s.Month.From.String()[:7])
	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Sales | %s |\n", s.Sales)
	r.Printf("| Expenses | %s |\n", s.Expenses)
	r.Printf("| **Profit** | **%s** |\n", s.Profit.SignedString())
	r.Printf("\n")

	ConditionalBlock(r, func(w io.Writer) bool {
		if s.Expenses.IsZero() {
			return false
		}
		fmt.Fprintf(w, "## Expenses by Category\n\n")
		fmt.Fprintf(w, "| Category | Amount | Share |\n")
		fmt.Fprintf(w, "|:---|---:|---:|\n")
		for _, line := range s.Breakdown {
			if line.Amount.IsZero() {
				continue
			}
			fmt.Fprintf(w, "| %s | %s | %s |\n", line.Category, line.Amount, line.Share)
		}
		fmt.Fprintf(w, "\n")
		return true
	})

	ConditionalBlock(r, func(w io.Writer) bool {
		if len(s.Top) == 0 {
			return false
		}
		fmt.Fprintf(w, "## Top Products\n\n")
		fmt.Fprintf(w, "| Product | Revenue | Units |\n")
		fmt.Fprintf(w, "|:---|---:|---:|\n")
		for _, pr := range s.Top {
			fmt.Fprintf(w, "| %s | %s | %d |\n", pr.Item.Name, pr.Revenue, pr.Units)
		}
		return true
	})

	return r.String()
}
