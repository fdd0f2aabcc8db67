package db

import (
	"context"
	"testing"
	"time"
)

func TestOpenAppliesMigrations(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	for _, table := range []string{"employees", "salary_payments", "commissions", "transfers"} {
		var name string
		err := conn.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	// Re-running against an already migrated schema is a no-op.
	if err := Migrate(ctx, conn); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestDateStringRoundTrip(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := DateString(d); got != "2024-03-01" {
		t.Fatalf("DateString = %q", got)
	}
	if got := ParseDateString("2024-03-01"); !got.Equal(d) {
		t.Fatalf("ParseDateString = %v", got)
	}
	if !ParseDateString("").IsZero() || DateString(time.Time{}) != "" {
		t.Fatal("zero time should encode to empty string and back")
	}
}

func TestTimeStringRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	encoded := TimeString(now)
	if got := ParseTimeString(encoded); !got.Equal(now) {
		t.Fatalf("round trip = %v, want %v", got, now)
	}
}
