package renderer

import (
	"fmt"
	"io"

	"github.com/sdiallo/boutique"
)

// SummaryMarkdown renders the one-day business summary to markdown.
func SummaryMarkdown(s *boutique.DaySummary) string {
	r := newRenderer()

	r.Printf("# Summary for %s\n\n", s.Date)
	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Sales | %s |\n", s.Sales)
	r.Printf("| Expenses | %s |\n", s.Expenses)
	r.Printf("| **Day's Profit** | **%s** |\n", s.Profit.SignedString())
	r.Printf("| Month's Profit | %s |\n", s.MonthProfit.SignedString())
	r.Printf("\n")

	r.Printf("## Momentum\n\n")
	r.Printf("| 7-Day Trend | Weekly Growth |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| %s | %s |\n", trendArrow(s.Trend), s.Growth.SignedString())
	r.Printf("\n")

	ConditionalBlock(r, func(w io.Writer) bool {
		if s.Target.IsZero() {
			return false
		}
		fmt.Fprintf(w, "## Daily Target\n\n")
		if s.Profit.GreaterThanOrEqual(s.Target) {
			fmt.Fprintf(w, "Target of %s reached.\n", s.Target)
		} else {
			fmt.Fprintf(w, "%s short of the %s target.\n", s.Target.Sub(s.Profit), s.Target)
		}
		return true
	})

	return r.String()
}
