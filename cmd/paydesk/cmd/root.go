// Package cmd is the presentation shell: a cobra command tree over the
// record stores and the statement builder. It owns all field-level input
// validation; by the time a service is called the values are well-formed.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "paydesk",
	Short: "Employee pay-event record keeper",
	Long: `paydesk tracks employee pay events (salary payments, commissions and
bank/cash transfers) in a local SQLite file and produces per-employee
account statements over a date range, as preview text or as a PDF.

Example:
  paydesk employee add --name "Sara Ahmed" --number E001 --base-salary 5000
  paydesk salary add --employee 1 --amount 5000 --month 3 --year 2024 --date 2024-03-01
  paydesk statement preview --employee 1 --from 2024-03-01 --to 2024-03-31
  paydesk statement export --employee 1 --from 2024-03-01 --to 2024-03-31`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is paydesk.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(employeeCmd)
	rootCmd.AddCommand(salaryCmd)
	rootCmd.AddCommand(commissionCmd)
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(statementCmd)
}

// fail reports a user-facing failure without terminating the process from
// library code; callers return the error so Execute exits non-zero.
func fail(err error, msg string) error {
	slog.Debug(msg, "error", err)
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	return err
}

// failValidation prints collected validation messages as one list and
// returns a terminal error; nothing was applied.
func failValidation(messages []string) error {
	fmt.Fprintln(os.Stderr, "Invalid input:")
	for _, msg := range messages {
		fmt.Fprintf(os.Stderr, "  - %s\n", msg)
	}
	return fmt.Errorf("validation failed")
}
