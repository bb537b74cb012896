package renderer

import (
	"fmt"

	"github.com/sdiallo/boutique"
)

// EntriesMarkdown renders a chronological entry listing. Product references
// are resolved against the stock list when possible and shown as raw ids
// otherwise.
func EntriesMarkdown(entries []boutique.Entry, stock []boutique.StockItem) string {
	r := newRenderer()

	r.Printf("# Entries\n\n")
	if len(entries) == 0 {
		r.Printf("No entries.\n")
		return r.String()
	}

	r.Printf("| Date | Type | Amount | Detail | ID |\n")
	r.Printf("|:---|:---|---:|:---|:---|\n")
	for _, e := range entries {
		r.Printf("| %s | %s | %s | %s | %s |\n", e.Date, e.Type, e.Amount, entryDetail(e, stock), e.ID)
	}

	return r.String()
}

func entryDetail(e boutique.Entry, stock []boutique.StockItem) string {
	switch e.Type {
	case boutique.Sale:
		return productLabel(e, stock)
	case boutique.Expense:
		if e.Category == boutique.CategoryStock && e.ProductID != "" {
			return string(e.Category) + ": " + productLabel(e, stock)
		}
		return string(e.Category)
	}
	return ""
}

func productLabel(e boutique.Entry, stock []boutique.StockItem) string {
	name := e.ProductID
	if it, ok := boutique.FindStock(stock, e.ProductID); ok {
		name = it.Name
	}
	if e.Quantity > 0 {
		return fmt.Sprintf("%d × %s", e.Quantity, name)
	}
	return name
}
