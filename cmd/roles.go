// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/business-access-service/internal/db"
	"github.com/canonical/business-access-service/internal/kratos"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/storage"
	"github.com/canonical/business-access-service/internal/tracing"
)

var systemRoles = []string{storage.SystemRoleAdmin, storage.SystemRoleSystem}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage system admin roles directly in the database",
}

var grantRoleCmd = &cobra.Command{
	Use:   "grant [identity-id|email] [role]",
	Short: "Grant a system role to an identity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRoleStorage(cmd, args, func(ctx context.Context, s *storage.Storage, id string) error {
			if err := s.GrantRole(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Role %s granted to %s\n", args[1], id)
			return nil
		})
	},
}

var revokeRoleCmd = &cobra.Command{
	Use:   "revoke [identity-id|email] [role]",
	Short: "Revoke a system role from an identity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRoleStorage(cmd, args, func(ctx context.Context, s *storage.Storage, id string) error {
			if err := s.RevokeRole(ctx, id, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Role %s revoked from %s\n", args[1], id)
			return nil
		})
	},
}

var checkRoleCmd = &cobra.Command{
	Use:   "check [identity-id|email]",
	Short: "Report whether an identity holds a system role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRoleStorage(cmd, args, func(ctx context.Context, s *storage.Storage, id string) error {
			ok, err := s.HasSystemRole(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s system admin: %v\n", id, ok)
			return nil
		})
	},
}

func withRoleStorage(cmd *cobra.Command, args []string, fn func(context.Context, *storage.Storage, string) error) error {
	if len(args) == 2 && !slices.Contains(systemRoles, args[1]) {
		return fmt.Errorf("unknown role %q, expected one of %v", args[1], systemRoles)
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	kratosURL, _ := cmd.Flags().GetString("kratos-admin-url")

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("business-access-service", logger)

	id, err := resolveIdentity(cmd.Context(), args[0], kratosURL, tracer, monitor, logger)
	if err != nil {
		return err
	}

	dbClient, err := db.NewDBClient(db.Config{DSN: dsn, MaxConns: 2, MinConns: 1, MaxConnLifetime: time.Hour, MaxConnIdleTime: time.Minute}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	return fn(cmd.Context(), storage.NewStorage(dbClient, tracer, monitor, logger), id)
}

// resolveIdentity maps an email address to its Kratos identity ID, other values are returned as is.
func resolveIdentity(ctx context.Context, ref, kratosURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (string, error) {
	if !strings.Contains(ref, "@") {
		return ref, nil
	}
	if kratosURL == "" {
		return "", fmt.Errorf("--kratos-admin-url is required to look up %s", ref)
	}

	id, err := kratos.NewClient(kratosURL, tracer, monitor, logger).GetIdentityIDByEmail(ctx, ref)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("no identity found for %s", ref)
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(rolesCmd)
	rolesCmd.AddCommand(grantRoleCmd)
	rolesCmd.AddCommand(revokeRoleCmd)
	rolesCmd.AddCommand(checkRoleCmd)

	rolesCmd.PersistentFlags().String("dsn", "", "PostgreSQL DSN connection string")
	rolesCmd.PersistentFlags().String("kratos-admin-url", "", "Kratos admin URL, used when an identity is given by email")
	_ = rolesCmd.MarkPersistentFlagRequired("dsn")
}
