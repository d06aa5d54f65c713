package ledger

import (
	"fmt"
	"time"

	"github.com/finsight-dev/finsight/internal/model"
)

// FinancialYear is a July 1 – June 30 accounting period labeled by its
// two calendar years, e.g. "2023-2024".
type FinancialYear struct {
	StartYear int
}

// Label returns the "YYYY-YYYY" form.
func (fy FinancialYear) Label() string {
	return fmt.Sprintf("%d-%d", fy.StartYear, fy.StartYear+1)
}

// Start returns July 1 of the starting year.
func (fy FinancialYear) Start() time.Time {
	return time.Date(fy.StartYear, time.July, 1, 0, 0, 0, 0, time.UTC)
}

// End returns June 30 of the following year.
func (fy FinancialYear) End() time.Time {
	return time.Date(fy.StartYear+1, time.June, 30, 0, 0, 0, 0, time.UTC)
}

// Range is the financial year clamped to the data: it starts no
// earlier than minDate and ends no later than today.
func (fy FinancialYear) Range(minDate, today time.Time) DateRange {
	return DateRange{Start: fy.Start(), End: fy.End()}.Clamp(minDate, today)
}

// ParseLabel parses a "YYYY-YYYY" financial year label.
func ParseLabel(s string) (FinancialYear, error) {
	var start, end int
	if _, err := fmt.Sscanf(s, "%d-%d", &start, &end); err != nil {
		return FinancialYear{}, fmt.Errorf("parsing financial year %q: %w", s, err)
	}
	if end != start+1 {
		return FinancialYear{}, fmt.Errorf("financial year %q must span consecutive years", s)
	}
	return FinancialYear{StartYear: start}, nil
}

// FinancialYears enumerates, in ascending order, every financial year
// that at least one transaction falls into. Candidate years run from
// one year before the earliest transaction to one year after the
// latest, so periods straddling the data's edges are considered.
func FinancialYears(txns []model.Transaction) []FinancialYear {
	if len(txns) == 0 {
		return nil
	}

	minYear := txns[0].Date.Year()
	maxYear := minYear
	for _, t := range txns[1:] {
		if y := t.Date.Year(); y < minYear {
			minYear = y
		} else if y > maxYear {
			maxYear = y
		}
	}

	var years []FinancialYear
	for y := minYear - 1; y <= maxYear+1; y++ {
		fy := FinancialYear{StartYear: y}
		if containsAny(txns, fy.Start(), fy.End()) {
			years = append(years, fy)
		}
	}
	return years
}

func containsAny(txns []model.Transaction, start, end time.Time) bool {
	for _, t := range txns {
		if !t.Date.Before(start) && !t.Date.After(end) {
			return true
		}
	}
	return false
}
