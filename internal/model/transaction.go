package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisplayDateFormat is the date layout used everywhere a date is shown
// to the user.
const DisplayDateFormat = "02/01/2006"

// Transaction is one normalized bank statement row. Debit carries the
// absolute value regardless of the sign in the source file.
type Transaction struct {
	Date        time.Time
	Credit      decimal.Decimal
	Debit       decimal.Decimal
	Balance     decimal.Decimal
	Description string
}
