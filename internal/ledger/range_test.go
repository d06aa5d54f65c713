package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finsight-dev/finsight/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_ContainsInclusive(t *testing.T) {
	r := DateRange{Start: day(2023, time.July, 1), End: day(2023, time.July, 31)}

	assert.True(t, r.Contains(day(2023, time.July, 1)))
	assert.True(t, r.Contains(day(2023, time.July, 31)))
	assert.True(t, r.Contains(day(2023, time.July, 15)))
	assert.False(t, r.Contains(day(2023, time.June, 30)))
	assert.False(t, r.Contains(day(2023, time.August, 1)))
}

func TestDateRange_Clamp(t *testing.T) {
	r := DateRange{Start: day(2023, time.January, 1), End: day(2024, time.December, 31)}
	clamped := r.Clamp(day(2023, time.July, 1), day(2024, time.June, 30))

	assert.Equal(t, day(2023, time.July, 1), clamped.Start)
	assert.Equal(t, day(2024, time.June, 30), clamped.End)
}

func TestDateRange_ClampNoOp(t *testing.T) {
	r := DateRange{Start: day(2023, time.July, 5), End: day(2023, time.July, 20)}
	clamped := r.Clamp(day(2023, time.July, 1), day(2023, time.July, 31))
	assert.Equal(t, r, clamped)
}

func TestDateRange_Filter(t *testing.T) {
	txns := []model.Transaction{
		txnOn(2023, time.June, 30),
		txnOn(2023, time.July, 1),
		txnOn(2023, time.July, 31),
		txnOn(2023, time.August, 1),
	}
	r := DateRange{Start: day(2023, time.July, 1), End: day(2023, time.July, 31)}

	filtered := r.Filter(txns)
	assert.Len(t, filtered, 2)
}

func TestLatestMonth(t *testing.T) {
	today := day(2024, time.March, 31)
	r := LatestMonth(today)
	assert.Equal(t, day(2024, time.March, 1), r.Start)
	assert.Equal(t, today, r.End)
}

func TestLatestFortnight(t *testing.T) {
	today := day(2024, time.March, 31)
	r := LatestFortnight(today)
	assert.Equal(t, day(2024, time.March, 17), r.Start)
	assert.Equal(t, today, r.End)
}

func TestSpan(t *testing.T) {
	txns := []model.Transaction{
		txnOn(2023, time.August, 12),
		txnOn(2022, time.March, 5),
		txnOn(2024, time.January, 2),
	}
	min, max, ok := Span(txns)
	assert.True(t, ok)
	assert.Equal(t, day(2022, time.March, 5), min)
	assert.Equal(t, day(2024, time.January, 2), max)
}

func TestSpan_Empty(t *testing.T) {
	_, _, ok := Span(nil)
	assert.False(t, ok)
}
