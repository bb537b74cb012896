package renderer

import (
	"fmt"
	"io"

	"github.com/sdiallo/boutique"
)

// StockMarkdown renders the inventory report: current levels, low-stock
// alerts, and best sellers by units and by revenue.
func StockMarkdown(report *boutique.StockReport) string {
	r := newRenderer()

	r.Printf("# Stock Report\n\n")
	if len(report.Items) == 0 {
		r.Printf("No products tracked yet.\n")
		return r.String()
	}

	r.Printf("| Product | On Hand | Alert Level | Sold | Avg. Price |\n")
	r.Printf("|:---|---:|---:|---:|---:|\n")
	for _, it := range report.Items {
		name := it.Name
		if boutique.IsLowStock(it) {
			name = "⚠ " + name
		}
		r.Printf("| %s | %d | %d | %d | %s |\n", name, it.Quantity, it.Threshold, it.TotalSold, it.UnitPrice)
	}
	r.Printf("\n")

	ConditionalBlock(r, func(w io.Writer) bool {
		if len(report.Low) == 0 {
			return false
		}
		fmt.Fprintf(w, "## Low Stock\n\n")
		for _, it := range report.Low {
			fmt.Fprintf(w, "* %s: %d left (alert at %d)\n", it.Name, it.Quantity, it.Threshold)
		}
		fmt.Fprintf(w, "\n")
		return true
	})

	ConditionalBlock(r, func(w io.Writer) bool {
		if len(report.Top) == 0 {
			return false
		}
		fmt.Fprintf(w, "## Best Sellers\n\n")
		fmt.Fprintf(w, "| Product | Units Sold |\n")
		fmt.Fprintf(w, "|:---|---:|\n")
		for _, it := range report.Top {
			fmt.Fprintf(w, "| %s | %d |\n", it.Name, it.TotalSold)
		}
		fmt.Fprintf(w, "\n")
		return true
	})

	ConditionalBlock(r, func(w io.Writer) bool {
		if len(report.ByRevenue) == 0 {
			return false
		}
		fmt.Fprintf(w, "## Top Revenue\n\n")
		fmt.Fprintf(w, "| Product | Revenue | Units |\n")
		fmt.Fprintf(w, "|:---|---:|---:|\n")
		for _, pr := range report.ByRevenue {
			fmt.Fprintf(w, "| %s | %s | %d |\n", pr.Item.Name, pr.Revenue, pr.Units)
		}
		return true
	})

	return r.String()
}
