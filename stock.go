package boutique

import (
	"sort"

	"github.com/google/uuid"
)

// StockItem represents one trackable product of the shop inventory.
type StockItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`  // units on hand, never negative
	Threshold int    `json:"threshold"` // alert level
	TotalSold int    `json:"totalSold"` // cumulative units sold
	UnitPrice Money  `json:"unitPrice"` // running weighted-average sale price, advisory only
}

// NewStockItem creates a product with a fresh id.
func NewStockItem(name string, quantity, threshold int) StockItem {
	return StockItem{
		ID:        uuid.NewString(),
		Name:      name,
		Quantity:  quantity,
		Threshold: threshold,
	}
}

// IsLowStock reports whether the item reached its alert level.
func IsLowStock(item StockItem) bool { return item.Quantity <= item.Threshold }

// Deduct returns the quantity of the matching item after removing qty units,
// floored at zero. The boolean is false when no item matches; callers must
// check existence before trusting a sale.
func Deduct(items []StockItem, productID string, qty int) (int, bool) {
	for _, it := range items {
		if it.ID == productID {
			q := it.Quantity - qty
			if q < 0 {
				q = 0
			}
			return q, true
		}
	}
	return 0, false
}

// FindStock returns the item with the given id, or false when absent.
// Referential integrity with entries is deliberately weak: a missing product
// is a recoverable outcome, not a fault.
func FindStock(items []StockItem, productID string) (StockItem, bool) {
	for _, it := range items {
		if it.ID == productID {
			return it, true
		}
	}
	return StockItem{}, false
}

// ApplyQuantityAndRevenue returns a copy of the item after selling qty units
// for a total saleAmount. TotalSold grows, Quantity shrinks (floored at
// zero), and UnitPrice is recomputed as a running weighted average:
//
//	newUnitPrice = round((oldTotalSold*oldUnitPrice + saleAmount) / newTotalSold)
//
// The average is advisory, used to prefill future sale totals. Individual
// sale amounts are always stored explicitly, never recomputed from it.
func ApplyQuantityAndRevenue(item StockItem, qty int, saleAmount Money) StockItem {
	if qty <= 0 {
		return item
	}
	oldSold := item.TotalSold
	item.TotalSold += qty
	item.Quantity -= qty
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	item.UnitPrice = item.UnitPrice.MulInt(oldSold).Add(saleAmount).DivInt(item.TotalSold)
	return item
}

// LowStockReport returns all items at or below their alert level, most
// critical first (ascending quantity/threshold ratio). An item with a zero
// threshold is reported with 0% remaining.
func LowStockReport(items []StockItem) []StockItem {
	var report []StockItem
	for _, it := range items {
		if IsLowStock(it) {
			report = append(report, it)
		}
	}
	sort.SliceStable(report, func(i, j int) bool {
		return stockRatio(report[i]) < stockRatio(report[j])
	})
	return report
}

// stockRatio is the fill level used to rank low-stock items.
func stockRatio(item StockItem) float64 {
	if item.Threshold == 0 {
		return 0
	}
	return float64(item.Quantity) / float64(item.Threshold)
}

// TopSellers returns up to n items with sales, by descending cumulative units sold.
func TopSellers(items []StockItem, n int) []StockItem {
	var sellers []StockItem
	for _, it := range items {
		if it.TotalSold > 0 {
			sellers = append(sellers, it)
		}
	}
	sort.SliceStable(sellers, func(i, j int) bool {
		return sellers[i].TotalSold > sellers[j].TotalSold
	})
	if n >= 0 && len(sellers) > n {
		sellers = sellers[:n]
	}
	return sellers
}

// ProductRevenue joins a stock item with the revenue and units aggregated
// from its sale entries.
type ProductRevenue struct {
	Item    StockItem
	Revenue Money
	Units   int
}

// TopByRevenue aggregates sale entries by product, joins them to the stock
// list, and returns up to n products by descending revenue. Sales referencing
// an unknown product are ignored here; their amounts still count in profits.
func TopByRevenue(items []StockItem, entries []Entry, n int) []ProductRevenue {
	perf := ProductPerformance(entries)

	var top []ProductRevenue
	for _, it := range items {
		p, ok := perf[it.ID]
		if !ok {
			continue
		}
		top = append(top, ProductRevenue{Item: it, Revenue: p.Revenue, Units: p.Units})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue.GreaterThan(top[j].Revenue)
	})
	if n >= 0 && len(top) > n {
		top = top[:n]
	}
	return top
}
