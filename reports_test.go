package boutique

import (
	"testing"

	"github.com/sdiallo/boutique/date"
)

func testDocument() *Document {
	doc := DefaultDocument()
	doc.Settings = Settings{Name: "Boutique Awa", DailyTarget: XOF(50000)}
	doc.Stock = []StockItem{
		{ID: "p1", Name: "Riz 25kg", Quantity: 1, Threshold: 2, TotalSold: 3},
		{ID: "p2", Name: "Huile 5L", Quantity: 9, Threshold: 2, TotalSold: 1},
	}
	doc.Entries = []Entry{
		testSale("2025-06-01", 100000, "p1", 2),
		testExpense("2025-06-01", CategoryTransport, 10000),
		testSale("2025-06-10", 50000, "p1", 1),
		testSale("2025-06-10", 20000, "p2", 1),
		testExpense("2025-06-15", CategoryLoyer, 80000),
		testSale("2025-05-20", 999999, "p2", 9), // previous month
	}
	return doc
}

func TestNewDaySummary(t *testing.T) {
	doc := testDocument()
	s := NewDaySummary(doc, date.MustParse("2025-06-01"))

	if !s.Sales.Equal(XOF(100000)) || !s.Expenses.Equal(XOF(10000)) {
		t.Errorf("totals = %v/%v, want 100000/10000", s.Sales, s.Expenses)
	}
	if !s.Profit.Equal(XOF(90000)) {
		t.Errorf("profit = %v, want 90000", s.Profit)
	}
	if !s.MonthProfit.Equal(XOF(80000)) {
		t.Errorf("month profit = %v, want 80000", s.MonthProfit)
	}
	if !s.Target.Equal(XOF(50000)) {
		t.Errorf("target = %v, want 50000", s.Target)
	}
}

func TestNewMonthSummary(t *testing.T) {
	doc := testDocument()
	s := NewMonthSummary(doc, date.MustParse("2025-06-20"), 5)

	if s.Month.From != date.MustParse("2025-06-01") || s.Month.To != date.MustParse("2025-06-30") {
		t.Errorf("month range = %v", s.Month)
	}
	if !s.Sales.Equal(XOF(170000)) || !s.Expenses.Equal(XOF(90000)) {
		t.Errorf("totals = %v/%v, want 170000/90000", s.Sales, s.Expenses)
	}
	if !s.Profit.Equal(XOF(80000)) {
		t.Errorf("profit = %v, want 80000", s.Profit)
	}
	// May's big sale must not leak into June's product ranking.
	if len(s.Top) == 0 || s.Top[0].Item.ID != "p1" || !s.Top[0].Revenue.Equal(XOF(150000)) {
		t.Errorf("top products = %+v, want p1 at 150000", s.Top)
	}
	if s.Breakdown[0].Category != CategoryLoyer {
		t.Errorf("top expense category = %v, want Loyer", s.Breakdown[0].Category)
	}
}

func TestNewStockReport(t *testing.T) {
	doc := testDocument()
	r := NewStockReport(doc, 1)

	if len(r.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(r.Items))
	}
	if len(r.Low) != 1 || r.Low[0].ID != "p1" {
		t.Errorf("low = %+v, want only p1", r.Low)
	}
	if len(r.Top) != 1 || r.Top[0].ID != "p1" {
		t.Errorf("top sellers = %+v, want only p1 (n=1)", r.Top)
	}
	if len(r.ByRevenue) != 1 || r.ByRevenue[0].Item.ID != "p2" {
		// p2 carries the 999999 May sale, dominating all-time revenue.
		t.Errorf("by revenue = %+v, want p2 first", r.ByRevenue)
	}
}
