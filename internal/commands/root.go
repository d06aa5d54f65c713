package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/buildinfo"
	"github.com/finsight-dev/finsight/internal/config"
	"github.com/finsight-dev/finsight/internal/ledger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finsight",
		Short:   "Personal finance statement extraction and transaction analytics",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newStatementCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newYearsCommand())
	rootCmd.AddCommand(newTransactionsCommand())

	return rootCmd
}

// loadSettings reads the settings file at path, or the defaults when
// the file does not exist and no explicit path was given.
func loadSettings(path string) (*config.Settings, error) {
	explicit := path != ""
	if !explicit {
		path = config.DefaultFile
	}
	s, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return s, nil
}

// paymentRule builds the ledger rule from settings.
func paymentRule(s *config.Settings) (ledger.PaymentRule, error) {
	amount, err := s.ReferenceAmount()
	if err != nil {
		return ledger.PaymentRule{}, err
	}
	return ledger.PaymentRule{Amount: amount, IntervalDays: s.PaymentIntervalDays}, nil
}
