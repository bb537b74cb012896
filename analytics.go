package boutique

import (
	"math"
	"sort"

	"github.com/sdiallo/boutique/date"
)

// This file holds the analytics engine: pure, deterministic functions over an
// entry list plus a reference day. They hold no state of their own and are
// safe to call repeatedly, in any order, and concurrently with each other.

// Profit is the sale total minus the expense total.
func Profit(sales, expenses Money) Money { return sales.Sub(expenses) }

// DayProfit returns the profit of the given day.
func DayProfit(entries []Entry, day date.Date) Money {
	var sales, expenses Money
	for _, e := range entries {
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
	return Profit(sales, expenses)
}

// MonthProfit returns the profit of the calendar month containing day.
func MonthProfit(entries []Entry, day date.Date) Money {
	month := date.Month(day)
	var sales, expenses Money
	for _, e := range entries {
		if !month.Contains(e.Date) {
			continue
		}
		switch e.Type {
		case Sale:
			sales = sales.Add(e.Amount)
		case Expense:
			expenses = expenses.Add(e.Amount)
		}
	}
	return Profit(sales, expenses)
}

// rangeTotals sums sale and expense amounts over a date range.
func rangeTotals(entries []Entry, r date.Range) (sales, expenses Money) {
	for _, e := range entries {
		if !r.Contains(e.Date) {
			continue
		}
		switch e.Type {
		case Sale:
			sales = sales.Add(e.Amount)
		case Expense:
			expenses = expenses.Add(e.Amount)
		}
	}
	return sales, expenses
}

// dailyProfits returns the profit of every day carrying at least one entry
// within the range, in chronological order.
func dailyProfits(entries []Entry, r date.Range) []float64 {
	byDay := make(map[date.Date]float64)
	for _, e := range entries {
		if !r.Contains(e.Date) {
			continue
		}
		switch e.Type {
		case Sale:
			byDay[e.Date] += e.Amount.AsFloat()
		case Expense:
			byDay[e.Date] -= e.Amount.AsFloat()
		}
	}
	days := make([]date.Date, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	profits := make([]float64, len(days))
	for i, d := range days {
		profits[i] = byDay[d]
	}
	return profits
}

// Trend7Day compares the first and second half of the last 7 calendar days
// of activity. It returns +1 when the second half's mean daily profit
// exceeds the first's by more than 5%, -1 when it is more than 5% lower, and
// 0 otherwise. With fewer than 2 days of data the signal is insufficient and
// the trend is 0, not negative.
func Trend7Day(entries []Entry, day date.Date) int {
	profits := dailyProfits(entries, date.Window(day, 7))
	if len(profits) < 2 {
		return 0
	}
	half := len(profits) / 2
	first := mean(profits[:half])
	second := mean(profits[half:])

	band := 0.05 * math.Abs(first)
	switch {
	case second-first > band:
		return +1
	case first-second > band:
		return -1
	default:
		return 0
	}
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// ExpenseRatio returns total expenses over total sales for the trailing
// window. A window without sales yields 0 rather than infinity: a known
// simplification that keeps the signal bounded.
func ExpenseRatio(entries []Entry, day date.Date, windowDays int) float64 {
	sales, expenses := rangeTotals(entries, date.Window(day, windowDays))
	if sales.IsZero() {
		return 0
	}
	return expenses.AsFloat() / sales.AsFloat()
}

// MissingEntryCount counts the calendar days of the trailing window with no
// entry at all.
func MissingEntryCount(entries []Entry, day date.Date, windowDays int) int {
	recorded := make(map[date.Date]bool)
	w := date.Window(day, windowDays)
	for _, e := range entries {
		if w.Contains(e.Date) {
			recorded[e.Date] = true
		}
	}
	missing := 0
	w.Each(func(d date.Date) {
		if !recorded[d] {
			missing++
		}
	})
	return missing
}

// WeeklyGrowth returns the percentage change in total profit between the
// trailing 7-day window and the 7 days before it. When the prior window's
// profit is exactly 0 the growth is reported as 0; "no growth" and "cannot
// compute growth" deliberately collapse into the same signal.
func WeeklyGrowth(entries []Entry, day date.Date) Percent {
	curSales, curExpenses := rangeTotals(entries, date.Window(day, 7))
	priorSales, priorExpenses := rangeTotals(entries, date.Window(day.Add(-7), 7))

	current := Profit(curSales, curExpenses).AsFloat()
	prior := Profit(priorSales, priorExpenses).AsFloat()
	if prior == 0 {
		return 0
	}
	return Percent(100 * (current - prior) / math.Abs(prior))
}

// CategoryAmount is one line of the expense breakdown.
type CategoryAmount struct {
	Category Category
	Amount   Money
	Share    Percent // share of the total expenses
}

// ExpenseBreakdown sums expense amounts per category. Every category is
// seeded at 0 so empty ones still report; the result is sorted by descending
// amount, ties keeping the canonical category order.
func ExpenseBreakdown(entries []Entry) []CategoryAmount {
	totals := make(map[Category]Money, len(Categories))
	for _, c := range Categories {
		totals[c] = Money{}
	}
	var total Money
	for _, e := range entries {
		if e.Type != Expense {
			continue
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
		total = total.Add(e.Amount)
	}

	breakdown := make([]CategoryAmount, 0, len(Categories))
	for _, c := range Categories {
		line := CategoryAmount{Category: c, Amount: totals[c]}
		if !total.IsZero() {
			line.Share = Percent(100 * totals[c].AsFloat() / total.AsFloat())
		}
		breakdown = append(breakdown, line)
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})
	return breakdown
}

// ProductPerf aggregates the sale entries of one product.
type ProductPerf struct {
	Revenue Money
	Units   int
}

// ProductPerformance aggregates revenue and units per product id from sale
// entries, regardless of whether the product still exists in stock.
func ProductPerformance(entries []Entry) map[string]ProductPerf {
	perf := make(map[string]ProductPerf)
	for _, e := range entries {
		if e.Type != Sale {
			continue
		}
		p := perf[e.ProductID]
		p.Revenue = p.Revenue.Add(e.Amount)
		p.Units += e.Quantity
		perf[e.ProductID] = p
	}
	return perf
}
