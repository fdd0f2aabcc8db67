package db

import (
	"context"
	"database/sql"
	"fmt"
)

type migration struct {
	version string
	sql     string
}

// migrations are applied in order inside individual transactions. Versions
// already recorded in schema_migrations are skipped, so Open is safe to call
// against an existing database file.
var migrations = []migration{
	{
		version: "0001_employees",
		sql: `
CREATE TABLE IF NOT EXISTS employees (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_number TEXT NOT NULL UNIQUE,
    name            TEXT NOT NULL,
    position        TEXT NOT NULL DEFAULT '',
    department      TEXT NOT NULL DEFAULT '',
    base_salary     REAL NOT NULL DEFAULT 0,
    hire_date       TEXT NOT NULL DEFAULT '',
    phone           TEXT NOT NULL DEFAULT '',
    email           TEXT NOT NULL DEFAULT '',
    active          INTEGER NOT NULL DEFAULT 1,
    created_at      TEXT NOT NULL,
    updated_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_employees_active_name ON employees(active, name);
`,
	},
	{
		version: "0002_salary_payments",
		sql: `
CREATE TABLE IF NOT EXISTS salary_payments (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_id  INTEGER NOT NULL REFERENCES employees(id),
    amount       REAL NOT NULL,
    month        INTEGER NOT NULL,
    year         INTEGER NOT NULL,
    payment_date TEXT NOT NULL,
    notes        TEXT NOT NULL DEFAULT '',
    created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_salary_payments_employee_date
    ON salary_payments(employee_id, payment_date);
`,
	},
	{
		version: "0003_commissions",
		sql: `
CREATE TABLE IF NOT EXISTS commissions (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_id     INTEGER NOT NULL REFERENCES employees(id),
    amount          REAL NOT NULL,
    description     TEXT NOT NULL DEFAULT '',
    commission_date TEXT NOT NULL,
    commission_type TEXT NOT NULL DEFAULT 'sales',
    notes           TEXT NOT NULL DEFAULT '',
    created_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_commissions_employee_date
    ON commissions(employee_id, commission_date);
`,
	},
	{
		version: "0004_transfers",
		sql: `
CREATE TABLE IF NOT EXISTS transfers (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_id      INTEGER NOT NULL REFERENCES employees(id),
    amount           REAL NOT NULL,
    sender_name      TEXT NOT NULL DEFAULT '',
    transfer_date    TEXT NOT NULL,
    reference_number TEXT NOT NULL DEFAULT '',
    transfer_type    TEXT NOT NULL DEFAULT 'bank',
    notes            TEXT NOT NULL DEFAULT '',
    created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transfers_employee_date
    ON transfers(employee_id, transfer_date);
`,
	},
}

// Migrate applies any pending schema migrations.
func Migrate(ctx context.Context, conn *sql.DB) error {
	if err := ensureMigrationsTable(ctx, conn); err != nil {
		return err
	}

	for _, m := range migrations {
		applied, err := migrationApplied(ctx, conn, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", m.version, err)
		}

		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", m.version); err != nil {
			_ = tx.Rollback()
			return err
		}

		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}

func ensureMigrationsTable(ctx context.Context, conn *sql.DB) error {
	_, err := conn.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TEXT NOT NULL DEFAULT (datetime('now')))")
	return err
}

func migrationApplied(ctx context.Context, conn *sql.DB, version string) (bool, error) {
	var count int
	err := conn.QueryRowContext(ctx, "SELECT COUNT(1) FROM schema_migrations WHERE version = ?", version).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
