package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"paydesk/internal/domain/statement"
	"paydesk/internal/render"
	"paydesk/internal/shared"
)

var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Build account statements over a date range",
}

var (
	statementFrom string
	statementTo   string
	statementOut  string
)

var statementPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the statement as plain text",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := buildStatement(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Print(render.Preview(st, a.cfg.Currency))
		return nil
	},
}

var statementExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the statement as a PDF document",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := buildStatement(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		path, err := render.WritePDF(st, a.cfg.Currency, a.cfg.ExportDir, statementOut)
		if err != nil {
			return fail(err, "failed to export statement")
		}
		slog.Info("statement exported", "employee", st.Employee.Number, "path", path)
		fmt.Printf("Statement written to %s\n", path)
		return nil
	},
}

// buildStatement parses the shared flags, opens the store and runs the
// statement builder. On success the caller owns closing the returned app.
func buildStatement(cmd *cobra.Command) (*app, *statement.Statement, error) {
	v := shared.NewValidator()
	start, _ := v.Date("from", statementFrom)
	end, _ := v.Date("to", statementTo)
	if v.HasIssues() {
		return nil, nil, failValidation(v.Messages())
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return nil, nil, fail(err, "failed to open store")
	}

	emp, err := resolveEmployee(cmd, a)
	if err != nil {
		a.Close()
		return nil, nil, fail(err, "failed to load employee")
	}

	st, err := a.statements.Build(cmd.Context(), emp.ID, start, end)
	if err != nil {
		a.Close()
		return nil, nil, fail(err, "failed to build statement")
	}
	return a, st, nil
}

func init() {
	lastMonth := time.Now().AddDate(0, 0, -30)
	for _, c := range []*cobra.Command{statementPreviewCmd, statementExportCmd} {
		addEmployeeSelector(c)
		c.Flags().StringVar(&statementFrom, "from", shared.FormatDate(lastMonth), "inclusive start date")
		c.Flags().StringVar(&statementTo, "to", shared.FormatDate(time.Now()), "inclusive end date")
	}
	statementExportCmd.Flags().StringVar(&statementOut, "out", "", "output path (defaults to account_statement_<number>_<from>_<to>.pdf)")

	statementCmd.AddCommand(statementPreviewCmd)
	statementCmd.AddCommand(statementExportCmd)
}
