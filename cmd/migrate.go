// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/business-access-service/internal/db"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/storage"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/migrations"
	"github.com/canonical/business-access-service/pkg/resources"
)

// migrateCmd performs DB migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long: `Run database migrations.

After "up" and during "check" the tenant scoped tables are inspected, the
command fails when any of them lacks forced row level security.`,
	Args: migrateArgs,
	Run:  runMigrate,
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "status", "check":
		if len(args) == 2 {
			return fmt.Errorf("%q takes no version argument", args[0])
		}
	case "down":
		if len(args) == 2 {
			if v, err := strconv.Atoi(args[1]); err != nil || v < 0 {
				return fmt.Errorf("invalid version number: %q", args[1])
			}
		}
	default:
		return fmt.Errorf("invalid first argument: %q", args[0])
	}

	return nil
}

func runMigrate(cmd *cobra.Command, args []string) {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	version := int64(-1)
	if len(args) > 1 {
		version, _ = strconv.ParseInt(args[1], 10, 64)
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	format, _ := cmd.Flags().GetString("format")

	m, err := newMigrator(cmd.Context(), dsn, format, cmd.OutOrStdout())
	if err != nil {
		cmd.PrintErrln(err)
		os.Exit(1)
	}
	defer m.close()

	if err := m.run(cmd.Context(), command, version); err != nil {
		cmd.PrintErrln(err)
		os.Exit(1)
	}
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")
	_ = migrateCmd.MarkFlagRequired("dsn")

	rootCmd.AddCommand(migrateCmd)
}

type migrator struct {
	provider *goose.Provider
	client   *db.DBClient
	storage  *storage.Storage

	json bool
	out  io.Writer
}

func newMigrator(ctx context.Context, dsn, format string, out io.Writer) (*migrator, error) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("business-access-service", logger)

	client, err := db.NewDBClient(
		db.Config{DSN: dsn, MaxConns: 2, MinConns: 1, MaxConnLifetime: time.Hour, MaxConnIdleTime: time.Minute},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("DB connection failed, shutting down, err: %v", err)
	}

	m := new(migrator)
	m.client = client
	m.storage = storage.NewStorage(client, tracer, monitor, logger)
	m.json = format == "json"
	m.out = out

	var opts []goose.ProviderOption
	if m.json {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	m.provider, err = goose.NewProvider(goose.DialectPostgres, m.sqlDB(), migrations.EmbedMigrations, opts...)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return m, nil
}

// sqlDB shares the client pool with goose.
func (m *migrator) sqlDB() *sql.DB {
	return stdlib.OpenDBFromPool(m.client.Pool())
}

func (m *migrator) close() {
	m.client.Close()
}

func (m *migrator) run(ctx context.Context, command string, version int64) error {
	switch command {
	case "up":
		return m.up(ctx)
	case "down":
		return m.down(ctx, version)
	case "status":
		return m.status(ctx)
	case "check":
		return m.check(ctx)
	}

	return fmt.Errorf("unknown migrate command %q", command)
}

func (m *migrator) up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return err
	}

	if err := m.verifyRowSecurity(ctx); err != nil {
		return err
	}

	return m.applied(results)
}

func (m *migrator) down(ctx context.Context, version int64) error {
	var (
		results []*goose.MigrationResult
		err     error
	)

	if version < 0 {
		var result *goose.MigrationResult
		if result, err = m.provider.Down(ctx); err == nil {
			results = append(results, result)
		}
	} else {
		results, err = m.provider.DownTo(ctx, version)
	}

	if err != nil {
		return err
	}

	return m.applied(results)
}

func (m *migrator) applied(results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(map[string]any{"applied": results})
	}

	for _, r := range results {
		fmt.Fprintln(m.out, r)
	}
	return nil
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(statuses)
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "APPLIED_AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
	}
	return w.Flush()
}

func (m *migrator) check(ctx context.Context) error {
	current, versionErr := m.provider.GetDBVersion(ctx)

	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	var rlsErr error
	if !pending {
		rlsErr = m.verifyRowSecurity(ctx)
	}

	if m.json {
		status := "ok"
		switch {
		case pending:
			status = "pending"
		case rlsErr != nil:
			status = "row_security_disabled"
		case versionErr != nil:
			status = "unknown"
		}
		return json.NewEncoder(m.out).Encode(map[string]any{
			"status":  status,
			"version": current,
		})
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}
	if rlsErr != nil {
		return rlsErr
	}

	fmt.Fprintf(m.out, "Database is up to date (version %d)\n", current)
	return nil
}

func (m *migrator) verifyRowSecurity(ctx context.Context) error {
	err := m.storage.VerifyRowSecurity(ctx, resources.Tables()...)
	if errors.Is(err, storage.ErrRowSecurityDisabled) {
		return fmt.Errorf("tenant isolation is not enforced: %w", err)
	}
	return err
}
