package boutique

import (
	"math"

	"github.com/sdiallo/boutique/date"
)

// Health is the composite business-health verdict: a score from 0 to 10 in
// steps of 0.5 and a human-readable explanation. Same inputs always produce
// the same output.
type Health struct {
	Score   float64
	Message string
	Trend   int
	Ratio   float64
	Missing int
	Growth  Percent
}

// Score bands for message selection.
const (
	bandExcellent = 8.5
	bandGood      = 6.5
	bandWarning   = 4.5
)

// HealthScore composes the analytics signals of the trailing week into a
// single bounded score. dailyTarget is ignored when zero.
func HealthScore(entries []Entry, dailyTarget Money, day date.Date) Health {
	today := DayProfit(entries, day)
	monthly := MonthProfit(entries, day)
	trend := Trend7Day(entries, day)
	ratio := ExpenseRatio(entries, day, 7)
	missing := MissingEntryCount(entries, day, 7)
	growth := WeeklyGrowth(entries, day)

	// Internal 0-100 scale, starting from a neutral base.
	score := 70

	// Profitability.
	if today.IsPositive() {
		score += 5
	} else if today.IsNegative() {
		score -= 15
	}
	if monthly.IsPositive() {
		score += 10
	} else if monthly.IsNegative() {
		score -= 20
	}

	// Consistency of record keeping.
	switch {
	case missing == 0:
		score += 10
	case missing == 1:
		score += 5
	case missing >= 5:
		score -= 10
	}

	// Expense control.
	switch {
	case ratio < 0.5:
		score += 15
	case ratio < 0.7:
		score += 5
	case ratio > 0.9:
		score -= 15
	default:
		score -= 5
	}

	// Momentum.
	score += 10 * trend
	if growth > 10 {
		score += 5
	} else if growth < -10 {
		score -= 5
	}

	// Target achievement.
	if dailyTarget.IsPositive() {
		if today.GreaterThanOrEqual(dailyTarget) {
			score += 10
		} else if today.GreaterThanOrEqual(dailyTarget.MulInt(3).DivInt(4)) {
			score += 5
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	// Compress to a 0-10 scale in steps of 0.5.
	final := math.Round(float64(score)/100*10*2) / 2

	h := Health{
		Score:   final,
		Trend:   trend,
		Ratio:   ratio,
		Missing: missing,
		Growth:  growth,
	}
	h.Message = healthMessage(h)
	return h
}

// healthMessage is a deterministic decision table keyed by score band,
// refined by the trend, expense-ratio and missing-entry signals.
func healthMessage(h Health) string {
	switch {
	case h.Score >= bandExcellent:
		if h.Trend > 0 {
			return "Excellent shape: profits are strong and still climbing."
		}
		return "Excellent shape: profits are strong and expenses under control."
	case h.Score >= bandGood:
		switch {
		case h.Ratio >= 0.7:
			return "Good shape overall, but expenses are eating into your sales."
		case h.Trend < 0:
			return "Good shape overall, though profits have been slipping this week."
		case h.Missing >= 2:
			return "Good shape overall; recording every day would sharpen the picture."
		default:
			return "Good shape: the business is profitable and steady."
		}
	case h.Score >= bandWarning:
		switch {
		case h.Ratio > 0.9:
			return "Warning: expenses are nearly swallowing your sales."
		case h.Missing >= 3:
			return "Warning: too many days without entries to trust the numbers."
		case h.Trend < 0:
			return "Warning: profits are trending down, watch the coming days."
		default:
			return "Warning: the business is fragile, margins are thin."
		}
	default:
		switch {
		case h.Missing >= 5:
			return "Critical: almost nothing recorded this week, start logging daily."
		case h.Trend < 0:
			return "Critical: losses are deepening week over week."
		default:
			return "Critical: the business is losing money, review expenses now."
		}
	}
}
