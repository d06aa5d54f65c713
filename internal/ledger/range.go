package ledger

import (
	"time"

	"github.com/finsight-dev/finsight/internal/model"
)

// DateRange is an inclusive selection of dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls within the range, inclusive on
// both ends.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Clamp restricts the range to [min, max].
func (r DateRange) Clamp(min, max time.Time) DateRange {
	if r.Start.Before(min) {
		r.Start = min
	}
	if r.End.After(max) {
		r.End = max
	}
	return r
}

// Filter returns the transactions whose dates fall within the range,
// preserving source order.
func (r DateRange) Filter(txns []model.Transaction) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if r.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// LatestMonth is the trailing 30 days ending today.
func LatestMonth(today time.Time) DateRange {
	return DateRange{Start: today.AddDate(0, 0, -30), End: today}
}

// LatestFortnight is the trailing 14 days ending today.
func LatestFortnight(today time.Time) DateRange {
	return DateRange{Start: today.AddDate(0, 0, -14), End: today}
}

// Span returns the earliest and latest transaction dates. ok is false
// for an empty set.
func Span(txns []model.Transaction) (min, max time.Time, ok bool) {
	if len(txns) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = txns[0].Date, txns[0].Date
	for _, t := range txns[1:] {
		if t.Date.Before(min) {
			min = t.Date
		}
		if t.Date.After(max) {
			max = t.Date
		}
	}
	return min, max, true
}
