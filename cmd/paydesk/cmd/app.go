package cmd

import (
	"context"
	"database/sql"
	"log/slog"

	"paydesk/internal/domain/employee"
	"paydesk/internal/domain/ledger"
	"paydesk/internal/domain/statement"
	"paydesk/internal/platform/config"
	"paydesk/internal/platform/db"
)

// app wires the store and services for one command invocation. Each command
// opens the database, does its work and closes; there is no long-lived
// process state.
type app struct {
	cfg        config.Config
	conn       *sql.DB
	employees  *employee.Service
	ledgers    *ledger.Service
	statements *statement.Service
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	slog.Debug("opening database", "path", cfg.DatabasePath)
	conn, err := db.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	employeeStore := employee.NewStore(conn)
	ledgerStore := ledger.NewStore(conn)

	return &app{
		cfg:        cfg,
		conn:       conn,
		employees:  employee.NewService(employeeStore),
		ledgers:    ledger.NewService(ledgerStore),
		statements: statement.NewService(employeeStore, ledgerStore),
	}, nil
}

func (a *app) Close() {
	if err := a.conn.Close(); err != nil {
		slog.Warn("closing database failed", "error", err)
	}
}
