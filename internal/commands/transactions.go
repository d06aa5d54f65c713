package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/ledger"
	"github.com/finsight-dev/finsight/internal/model"
)

func newTransactionsCommand() *cobra.Command {
	var from, to, keyword string

	cmd := &cobra.Command{
		Use:   "transactions <file.csv>",
		Short: "Show income and expense tables, optionally filtered by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, report, err := ledger.LoadFile(args[0])
			if err != nil {
				return err
			}
			if report.Dropped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "dropped %d rows with unparseable dates\n", report.Dropped)
			}

			if from != "" || to != "" {
				r, err := parseRange(from, to, txns)
				if err != nil {
					return err
				}
				txns = r.Filter(txns)
			}

			income, expense := ledger.FilterByKeyword(txns, keyword)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Income Transactions")
			writeTable(out, "Credit", income)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Expense Transactions")
			writeTable(out, "Debit", expense)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyword, "keyword", ledger.AllKeyword, "restrict to descriptions containing this keyword")
	cmd.Flags().StringVar(&from, "from", "", "range start (DD/MM/YYYY)")
	cmd.Flags().StringVar(&to, "to", "", "range end (DD/MM/YYYY)")

	return cmd
}

func parseRange(from, to string, txns []model.Transaction) (ledger.DateRange, error) {
	today := time.Now()
	minDate, _, ok := ledger.Span(txns)
	if !ok {
		minDate = today
	}

	r := ledger.DateRange{Start: minDate, End: today}
	var err error
	if from != "" {
		if r.Start, err = time.Parse(model.DisplayDateFormat, from); err != nil {
			return ledger.DateRange{}, fmt.Errorf("parsing --from %q: %w", from, err)
		}
	}
	if to != "" {
		if r.End, err = time.Parse(model.DisplayDateFormat, to); err != nil {
			return ledger.DateRange{}, fmt.Errorf("parsing --to %q: %w", to, err)
		}
	}
	return r.Clamp(minDate, today), nil
}

func writeTable(out io.Writer, amountCol string, rows []model.ViewRow) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Date\t%s\tBalance\tDescription\n", amountCol)
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Date, row.Amount, row.Balance, row.Description)
	}
	w.Flush()
}
