package cmd

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"paydesk/internal/domain/employee"
	"paydesk/internal/shared"
)

var employeeSelector string

// addEmployeeSelector registers the shared --employee flag, which accepts
// either the numeric id or the human-readable employee number.
func addEmployeeSelector(c *cobra.Command) {
	c.Flags().StringVar(&employeeSelector, "employee", "", "employee id or number")
	c.MarkFlagRequired("employee")
}

func resolveEmployee(cmd *cobra.Command, a *app) (*employee.Employee, error) {
	return lookupEmployee(cmd.Context(), a.employees, employeeSelector)
}

// lookupEmployee resolves an id-or-number selector. An all-digit selector
// is tried as a row id first; when no row carries that id it is retried as
// an employee number, so purely numeric numbers stay addressable.
func lookupEmployee(ctx context.Context, employees *employee.Service, selector string) (*employee.Employee, error) {
	selector = strings.TrimSpace(selector)
	if id, err := strconv.ParseInt(selector, 10, 64); err == nil {
		emp, err := employees.Get(ctx, id)
		if !errors.Is(err, employee.ErrNotFound) {
			return emp, err
		}
	}
	return employees.GetByNumber(ctx, selector)
}

// parseOptionalDate validates a date flag that may be left empty; the zero
// time means "use the default".
func parseOptionalDate(v *shared.Validator, field, raw string) (time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, true
	}
	return v.Date(field, raw)
}

// parseRange validates the optional --from/--to pair shared by the ledger
// list commands. Either side may be empty (unbounded).
func parseRange(v *shared.Validator, from, to string) (time.Time, time.Time) {
	start, _ := parseOptionalDate(v, "from", from)
	end, _ := parseOptionalDate(v, "to", to)
	return start, end
}
