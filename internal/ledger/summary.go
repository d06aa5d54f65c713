package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/model"
)

// PaymentRule describes the recurring fixed payment to detect: a debit
// exactly equal to Amount, expected to recur every IntervalDays.
type PaymentRule struct {
	Amount       decimal.Decimal
	IntervalDays int
}

// Summarize computes the metrics for transactions within r: credit and
// debit totals, the balance of the chronologically latest transaction
// (zero when the range is empty), the predicted next occurrence of the
// rule's fixed payment (nil when no debit matches), and how much more
// is needed on top of the latest balance to cover the payment.
func Summarize(txns []model.Transaction, r DateRange, rule PaymentRule) model.RangeSummary {
	s := model.RangeSummary{
		TotalIncome:   decimal.Zero,
		TotalExpense:  decimal.Zero,
		LatestBalance: decimal.Zero,
	}

	var latest, lastPayment model.Transaction
	var haveLatest, havePayment bool

	for _, t := range txns {
		if !r.Contains(t.Date) {
			continue
		}

		s.TotalIncome = s.TotalIncome.Add(t.Credit)
		s.TotalExpense = s.TotalExpense.Add(t.Debit)

		if !haveLatest || t.Date.After(latest.Date) {
			latest = t
			haveLatest = true
		}
		if t.Debit.Equal(rule.Amount) && (!havePayment || t.Date.After(lastPayment.Date)) {
			lastPayment = t
			havePayment = true
		}
	}

	if haveLatest {
		s.LatestBalance = latest.Balance
	}
	if havePayment {
		next := lastPayment.Date.AddDate(0, 0, rule.IntervalDays)
		s.NextPayment = &next
	}

	s.ExtraAmountNeeded = rule.Amount.Sub(s.LatestBalance)
	if s.ExtraAmountNeeded.IsNegative() {
		s.ExtraAmountNeeded = decimal.Zero
	}
	return s
}
