package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/ledger"
)

func newYearsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "years <file.csv>",
		Short: "List the financial years covered by a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, _, err := ledger.LoadFile(args[0])
			if err != nil {
				return err
			}
			for _, fy := range ledger.FinancialYears(txns) {
				fmt.Fprintln(cmd.OutOrStdout(), fy.Label())
			}
			return nil
		},
	}
}
