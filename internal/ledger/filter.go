package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finsight-dev/finsight/internal/model"
)

// AllKeyword selects every row regardless of description.
const AllKeyword = "All"

// FilterByKeyword derives the income view (credit > 0, debit dropped)
// and expense view (debit > 0, credit dropped) from txns. Amounts are
// rounded to 2 decimal places and dates formatted DD/MM/YYYY. Any
// keyword other than AllKeyword restricts both views to rows whose
// description contains it, case-insensitive.
func FilterByKeyword(txns []model.Transaction, keyword string) (income, expense []model.ViewRow) {
	all := keyword == "" || strings.EqualFold(keyword, AllKeyword)
	needle := strings.ToLower(keyword)

	for _, t := range txns {
		if !all && !strings.Contains(strings.ToLower(t.Description), needle) {
			continue
		}

		if t.Credit.IsPositive() {
			income = append(income, viewRow(t, t.Credit))
		}
		if t.Debit.IsPositive() {
			expense = append(expense, viewRow(t, t.Debit))
		}
	}
	return income, expense
}

func viewRow(t model.Transaction, amount decimal.Decimal) model.ViewRow {
	return model.ViewRow{
		Date:        t.Date.Format(model.DisplayDateFormat),
		Amount:      amount.StringFixed(2),
		Balance:     t.Balance.StringFixed(2),
		Description: t.Description,
	}
}
