package date

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the inclusive range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Window returns the trailing window of 'days' calendar days ending on 'end' (inclusive).
func Window(end Date, days int) Range {
	if days < 1 {
		days = 1
	}
	return Range{From: end.Add(1 - days), To: end}
}

// Month returns the range covering the whole calendar month of d.
func Month(d Date) Range {
	return Range{From: d.StartOfMonth(), To: d.EndOfMonth()}
}

// Contains reports whether day is within the range, boundaries included.
func (r Range) Contains(day Date) bool {
	return !day.Before(r.From) && !day.After(r.To)
}

// Days returns the number of calendar days in the range.
func (r Range) Days() int {
	n := 0
	for d := r.From; !d.After(r.To); d = d.Add(1) {
		n++
	}
	return n
}

// Each calls f for every day of the range in chronological order.
func (r Range) Each(f func(Date)) {
	for d := r.From; !d.After(r.To); d = d.Add(1) {
		f(d)
	}
}

func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
