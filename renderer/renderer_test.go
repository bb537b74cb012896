package renderer

import (
	"strings"
	"testing"

	"github.com/sdiallo/boutique"
	"github.com/sdiallo/boutique/date"
)

func money(v float64) boutique.Money { return boutique.M(v) }

func TestSummaryMarkdown(t *testing.T) {
	s := &boutique.DaySummary{
		Date:        date.MustParse("2025-06-01"),
		Sales:       money(100000),
		Expenses:    money(10000),
		Profit:      money(90000),
		MonthProfit: money(90000),
		Trend:       1,
		Growth:      boutique.Percent(12.5),
		Target:      money(50000),
	}

	md := SummaryMarkdown(s)
	for _, want := range []string{
		"# Summary for 2025-06-01",
		"| Sales |",
		"▲ rising",
		"+12.50%",
		"Target of",
		"reached",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary misses %q:\n%s", want, md)
		}
	}
}

func TestSummaryMarkdownWithoutTarget(t *testing.T) {
	s := &boutique.DaySummary{Date: date.MustParse("2025-06-01")}
	if md := SummaryMarkdown(s); strings.Contains(md, "Daily Target") {
		t.Errorf("target section rendered without a target:\n%s", md)
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	s := &boutique.MonthSummary{
		Month:    date.NewRange(date.MustParse("2025-06-01"), date.MustParse("2025-06-30")),
		Sales:    money(170000),
		Expenses: money(90000),
		Profit:   money(80000),
		Breakdown: []boutique.CategoryAmount{
			{Category: boutique.CategoryLoyer, Amount: money(80000), Share: boutique.Percent(88.9)},
			{Category: boutique.CategoryTransport, Amount: money(10000), Share: boutique.Percent(11.1)},
			{Category: boutique.CategoryInternet},
		},
		Top: []boutique.ProductRevenue{
			{Item: boutique.StockItem{ID: "p1", Name: "Riz 25kg"}, Revenue: money(150000), Units: 3},
		},
	}

	md := MonthlyMarkdown(s)
	for _, want := range []string{
		"# Monthly Review: 2025-06",
		"## Expenses by Category",
		"| Loyer |",
		"## Top Products",
		"| Riz 25kg |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("monthly review misses %q:\n%s", want, md)
		}
	}
	// Categories without spending are dropped from the month view.
	if strings.Contains(md, "Internet") {
		t.Errorf("zero category rendered:\n%s", md)
	}
}

func TestStockMarkdown(t *testing.T) {
	report := &boutique.StockReport{
		Items: []boutique.StockItem{
			{ID: "p1", Name: "Riz 25kg", Quantity: 1, Threshold: 2, TotalSold: 12},
			{ID: "p2", Name: "Huile 5L", Quantity: 9, Threshold: 2, TotalSold: 4},
		},
		Low: []boutique.StockItem{
			{ID: "p1", Name: "Riz 25kg", Quantity: 1, Threshold: 2},
		},
		Top: []boutique.StockItem{
			{ID: "p1", Name: "Riz 25kg", TotalSold: 12},
			{ID: "p2", Name: "Huile 5L", TotalSold: 4},
		},
		ByRevenue: []boutique.ProductRevenue{
			{Item: boutique.StockItem{ID: "p1", Name: "Riz 25kg"}, Revenue: money(300000), Units: 12},
		},
	}

	md := StockMarkdown(report)
	for _, want := range []string{
		"# Stock Report",
		"⚠ Riz 25kg",
		"## Low Stock",
		"1 left (alert at 2)",
		"## Best Sellers",
		"## Top Revenue",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("stock report misses %q:\n%s", want, md)
		}
	}
}

func TestStockMarkdownEmptySectionsAreSkipped(t *testing.T) {
	report := &boutique.StockReport{
		Items: []boutique.StockItem{{ID: "p1", Name: "Riz", Quantity: 9, Threshold: 2}},
	}
	md := StockMarkdown(report)
	for _, section := range []string{"## Low Stock", "## Best Sellers", "## Top Revenue"} {
		if strings.Contains(md, section) {
			t.Errorf("empty section %q rendered:\n%s", section, md)
		}
	}
}

func TestBreakdownMarkdown(t *testing.T) {
	md := BreakdownMarkdown([]boutique.CategoryAmount{
		{Category: boutique.CategoryLoyer, Amount: money(75000), Share: boutique.Percent(75)},
		{Category: boutique.CategoryTransport, Amount: money(25000), Share: boutique.Percent(25)},
		{Category: boutique.CategoryInternet},
		{Category: boutique.CategorySalaire},
	})
	for _, want := range []string{"# Expense Breakdown", "| Loyer |", "75.00%", "**Total**"} {
		if !strings.Contains(md, want) {
			t.Errorf("breakdown misses %q:\n%s", want, md)
		}
	}
	// The breakdown seeds every category; only those with spending are shown.
	for _, zero := range []string{"Internet", "Salaire"} {
		if strings.Contains(md, zero) {
			t.Errorf("zero category %q rendered:\n%s", zero, md)
		}
	}
}

func TestHealthMarkdown(t *testing.T) {
	md := HealthMarkdown(boutique.Health{
		Score:   7.5,
		Message: "Good shape: the business is profitable and steady.",
		Trend:   -1,
		Ratio:   0.42,
		Missing: 2,
	})
	for _, want := range []string{
		"# Business Health: 7.5 / 10",
		"Good shape",
		"▼ falling",
		"42%",
		"2 of 7",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("health report misses %q:\n%s", want, md)
		}
	}

	if md := HealthMarkdown(boutique.Health{Score: 8, Message: "x"}); !strings.Contains(md, "8 / 10") {
		t.Errorf("whole score should render without decimals:\n%s", md)
	}
}

func TestEntriesMarkdown(t *testing.T) {
	stock := []boutique.StockItem{{ID: "p1", Name: "Riz 25kg"}}
	entries := []boutique.Entry{
		{ID: "e1", Date: date.MustParse("2025-06-01"), Type: boutique.Sale,
			Amount: money(100000), ProductID: "p1", Quantity: 2},
		{ID: "e2", Date: date.MustParse("2025-06-01"), Type: boutique.Expense,
			Amount: money(10000), Category: boutique.CategoryTransport},
		{ID: "e3", Date: date.MustParse("2025-06-02"), Type: boutique.Sale,
			Amount: money(5000), ProductID: "ghost", Quantity: 1},
	}

	md := EntriesMarkdown(entries, stock)
	for _, want := range []string{
		"2 × Riz 25kg", // resolved product name
		"Transport",
		"1 × ghost", // unresolved ids stay visible
	} {
		if !strings.Contains(md, want) {
			t.Errorf("entry log misses %q:\n%s", want, md)
		}
	}

	if md := EntriesMarkdown(nil, nil); !strings.Contains(md, "No entries.") {
		t.Errorf("empty log = %q", md)
	}
}
