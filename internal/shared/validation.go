package shared

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	emailPattern          = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern          = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	employeeNumberPattern = regexp.MustCompile(`^[A-Za-z0-9]{3,10}$`)
	phoneStrip            = regexp.MustCompile(`[^\d+]`)
)

type ValidationIssue struct {
	Field  string
	Reason string
}

// Validator accumulates field-level validation issues so a form submission
// is either accepted whole or rejected whole.
type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{
		Field:  field,
		Reason: reason,
	})
}

func (v *Validator) Required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
	}
}

// Name requires at least two characters after trimming.
func (v *Validator) Name(field, value string) {
	if len(strings.TrimSpace(value)) < 2 {
		v.Add(field, "must be at least two characters")
	}
}

// EmployeeNumber requires 3-10 letters or digits.
func (v *Validator) EmployeeNumber(field, value string) {
	if !employeeNumberPattern.MatchString(strings.TrimSpace(value)) {
		v.Add(field, "must be 3-10 letters or digits")
	}
}

// Email validates the address shape when the value is present; the field
// itself is optional.
func (v *Validator) Email(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if !emailPattern.MatchString(value) {
		v.Add(field, "must be a valid email address")
	}
}

// Phone validates the number shape when the value is present; spaces and
// punctuation are ignored.
func (v *Validator) Phone(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if !phonePattern.MatchString(phoneStrip.ReplaceAllString(value, "")) {
		v.Add(field, "must be a valid phone number")
	}
}

// Amount parses a non-negative monetary amount. An empty value is reported
// as missing. ParseFloat accepts NaN and the infinities; those are not
// amounts and are rejected.
func (v *Validator) Amount(field, raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		v.Add(field, "is required")
		return 0, false
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		v.Add(field, "must be a non-negative number")
		return 0, false
	}
	return amount, true
}

// OptionalAmount behaves like Amount but treats an empty value as zero.
func (v *Validator) OptionalAmount(field, raw string) (float64, bool) {
	if strings.TrimSpace(raw) == "" {
		return 0, true
	}
	return v.Amount(field, raw)
}

// Month requires a calendar month between 1 and 12.
func (v *Validator) Month(field, raw string) (int, bool) {
	month, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || month < 1 || month > 12 {
		v.Add(field, "must be a month between 1 and 12")
		return 0, false
	}
	return month, true
}

// Year requires a plausible four-digit year.
func (v *Validator) Year(field, raw string) (int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || year < 1900 || year > 2999 {
		v.Add(field, "must be a four-digit year")
		return 0, false
	}
	return year, true
}

// Date parses a calendar date in one of the accepted formats.
func (v *Validator) Date(field, raw string) (time.Time, bool) {
	parsed, err := ParseDate(strings.TrimSpace(raw))
	if err != nil || parsed.IsZero() {
		v.Add(field, "must be a valid date (YYYY-MM-DD, DD/MM/YYYY, DD-MM-YYYY or YYYY/MM/DD)")
		return time.Time{}, false
	}
	return parsed, true
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]ValidationIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// Messages renders the issues as human-readable lines.
func (v *Validator) Messages() []string {
	issues := v.Issues()
	if len(issues) == 0 {
		return nil
	}
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, issue.Field+" "+issue.Reason)
	}
	return messages
}

// CleanText trims surrounding whitespace, treating blank input as empty.
func CleanText(text string) string {
	return strings.TrimSpace(text)
}
