package db

import "time"

// Dates with calendar meaning (payment, commission, transfer, hire) are
// stored as YYYY-MM-DD text so lexicographic comparison in SQL matches
// chronological order. Row timestamps use RFC 3339.

func DateString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func ParseDateString(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func TimeString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ParseTimeString(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
