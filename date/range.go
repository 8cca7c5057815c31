package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// LastDays returns the range covering the n calendar days ending on 'to'.
func LastDays(to Date, n int) Range {
	if n < 1 {
		n = 1
	}
	return Range{From: to.Add(1 - n), To: to}
}

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of calendar days in the range.
func (r Range) Days() int {
	count := 1
	for d := r.From; d.Before(r.To); d = d.Add(1) {
		count++
	}
	return count
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
