package shared

import (
	"fmt"
	"time"
)

// dateFormats are tried in order; the first successful parse wins. The two
// separator-delimited forms with a trailing four-digit year are day-first,
// so "01/03/2024" is the 1st of March, never the 3rd of January.
var dateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
}

// ParseDate accepts a calendar date in one of the supported formats.
// An empty value parses to the zero time.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", value)
}

// FormatDate renders a date in the canonical YYYY-MM-DD form used for
// storage and display.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
