package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoRecentPayment is shown when no transaction in range matches the
// reference payment amount.
const NoRecentPayment = "No recent payment found"

// RangeSummary holds the metrics computed over a date range of
// transactions. NextPayment is nil when no matching payment was found.
type RangeSummary struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	LatestBalance     decimal.Decimal
	NextPayment       *time.Time
	ExtraAmountNeeded decimal.Decimal
}

// NextPaymentDisplay formats the predicted payment date for display,
// falling back to the NoRecentPayment sentinel.
func (s RangeSummary) NextPaymentDisplay() string {
	if s.NextPayment == nil {
		return NoRecentPayment
	}
	return s.NextPayment.Format(DisplayDateFormat)
}

// ViewRow is one row of a rendered income or expense table. Amount is
// the credit value in an income view and the debit value in an expense
// view, already rounded to 2 decimal places.
type ViewRow struct {
	Date        string
	Amount      string
	Balance     string
	Description string
}
