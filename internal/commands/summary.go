package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/ledger"
	"github.com/finsight-dev/finsight/internal/model"
)

func newSummaryCommand() *cobra.Command {
	var cfgPath, from, to, yearLabel string
	var latestMonth, latestFortnight bool

	cmd := &cobra.Command{
		Use:   "summary <file.csv>",
		Short: "Summarize transactions over a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cfgPath)
			if err != nil {
				return err
			}
			rule, err := paymentRule(settings)
			if err != nil {
				return err
			}

			txns, report, err := ledger.LoadFile(args[0])
			if err != nil {
				return err
			}
			if report.Dropped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "dropped %d rows with unparseable dates\n", report.Dropped)
			}

			today := time.Now()
			minDate, _, ok := ledger.Span(txns)
			if !ok {
				minDate = today
			}

			r := ledger.DateRange{Start: minDate, End: today}
			switch {
			case latestMonth:
				r = ledger.LatestMonth(today)
			case latestFortnight:
				r = ledger.LatestFortnight(today)
			case yearLabel != "":
				fy, err := ledger.ParseLabel(yearLabel)
				if err != nil {
					return err
				}
				r = fy.Range(minDate, today)
			default:
				if from != "" {
					if r.Start, err = time.Parse(model.DisplayDateFormat, from); err != nil {
						return fmt.Errorf("parsing --from %q: %w", from, err)
					}
				}
				if to != "" {
					if r.End, err = time.Parse(model.DisplayDateFormat, to); err != nil {
						return fmt.Errorf("parsing --to %q: %w", to, err)
					}
				}
			}
			r = r.Clamp(minDate, today)

			s := ledger.Summarize(txns, r, rule)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total Income:        $%s\n", s.TotalIncome.StringFixed(2))
			fmt.Fprintf(out, "Total Expense:       $%s\n", s.TotalExpense.StringFixed(2))
			fmt.Fprintf(out, "Latest Balance:      $%s\n", s.LatestBalance.StringFixed(2))
			fmt.Fprintf(out, "Next Payment Date:   %s\n", s.NextPaymentDisplay())
			fmt.Fprintf(out, "Extra Amount Needed: $%s\n", s.ExtraAmountNeeded.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "settings file (default finsight.yaml)")
	cmd.Flags().StringVar(&from, "from", "", "range start (DD/MM/YYYY)")
	cmd.Flags().StringVar(&to, "to", "", "range end (DD/MM/YYYY)")
	cmd.Flags().StringVar(&yearLabel, "year", "", "financial year, e.g. 2023-2024")
	cmd.Flags().BoolVar(&latestMonth, "latest-month", false, "trailing 30 days")
	cmd.Flags().BoolVar(&latestFortnight, "latest-fortnight", false, "trailing 14 days")
	cmd.MarkFlagsMutuallyExclusive("latest-month", "latest-fortnight", "year")

	return cmd
}
