package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/statement"
)

func newStatementCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "statement <file.pdf>",
		Short: "Extract key figures and dates from a rental statement PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := statement.Open(args[0])
			if err != nil {
				return err
			}
			sum, err := statement.Extract(src)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Money In:          $%s\n", sum.TotalIn().StringFixed(2))
			fmt.Fprintf(out, "Money Out:         $%s\n", sum.TotalOut().StringFixed(2))
			fmt.Fprintf(out, "Net Received:      $%s\n", sum.TotalReceived().StringFixed(2))
			fmt.Fprintf(out, "Remaining Balance: $%s\n", sum.Net().StringFixed(2))

			if key, ok := sum.KeyDate(); ok {
				fmt.Fprintf(out, "On Date:           %s\n", key)
			}
			if dates := sum.DisplayDates(); len(dates) > 0 {
				fmt.Fprintln(out, "Key Dates:")
				for _, d := range dates {
					fmt.Fprintf(out, "  - %s\n", d)
				}
			}
			return nil
		},
	}
}
