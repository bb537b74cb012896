package boutique

import (
	"github.com/sdiallo/boutique/date"
)

// DaySummary provides an at-a-glance overview of one day of business plus
// the month and momentum context around it.
type DaySummary struct {
	Date        date.Date
	Sales       Money
	Expenses    Money
	Profit      Money
	MonthProfit Money
	Trend       int
	Growth      Percent
	Target      Money // zero when no daily target is set
}

// NewDaySummary derives the summary of a day from the document.
func NewDaySummary(doc *Document, day date.Date) *DaySummary {
	var sales, expenses Money
	for _, e := range doc.Entries {
		if e.Date != day {
			continue
		}
		switch e.Type {
		case Sale:
			sales = sales.Add(e.Amount)
		case Expense:
			expenses = expenses.Add(e.Amount)
		}
	}
	return &DaySummary{
		Date:        day,
		Sales:       sales,
		Expenses:    expenses,
		Profit:      Profit(sales, expenses),
		MonthProfit: MonthProfit(doc.Entries, day),
		Trend:       Trend7Day(doc.Entries, day),
		Growth:      WeeklyGrowth(doc.Entries, day),
		Target:      doc.Settings.DailyTarget,
	}
}

// MonthSummary reviews one calendar month: totals, profit, where the money
// went, and what sold best.
type MonthSummary struct {
	Month     date.Range
	Sales     Money
	Expenses  Money
	Profit    Money
	Breakdown []CategoryAmount
	Top       []ProductRevenue
}

// NewMonthSummary derives the review of the calendar month containing day.
// n bounds the top-product list; a negative n means unbounded.
func NewMonthSummary(doc *Document, day date.Date, n int) *MonthSummary {
	month := date.Month(day)
	var monthEntries []Entry
	for _, e := range doc.Entries {
		if month.Contains(e.Date) {
			monthEntries = append(monthEntries, e)
		}
	}
	sales, expenses := rangeTotals(doc.Entries, month)
	return &MonthSummary{
		Month:     month,
		Sales:     sales,
		Expenses:  expenses,
		Profit:    Profit(sales, expenses),
		Breakdown: ExpenseBreakdown(monthEntries),
		Top:       TopByRevenue(doc.Stock, monthEntries, n),
	}
}

// StockReport gathers the present-state inventory views: alert levels, best
// sellers by units and by revenue.
type StockReport struct {
	Items     []StockItem
	Low       []StockItem
	Top       []StockItem
	ByRevenue []ProductRevenue
}

// NewStockReport derives the stock report from the document. n bounds the
// top-seller and top-revenue lists; a negative n means unbounded.
func NewStockReport(doc *Document, n int) *StockReport {
	return &StockReport{
		Items:     doc.Stock,
		Low:       LowStockReport(doc.Stock),
		Top:       TopSellers(doc.Stock, n),
		ByRevenue: TopByRevenue(doc.Stock, doc.Entries, n),
	}
}
