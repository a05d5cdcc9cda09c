// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
)

var errUnreachable = errors.New("connection refused")

type unreachableConnector struct{}

func (unreachableConnector) Connect(context.Context) (driver.Conn, error) {
	return nil, errUnreachable
}

func (unreachableConnector) Driver() driver.Driver {
	return nil
}

func newUnreachableClient(t *testing.T) *DBClient {
	db := sql.OpenDB(unreachableConnector{})
	t.Cleanup(func() { _ = db.Close() })

	logger := logging.NewNoopLogger()

	d := new(DBClient)
	d.db = db
	d.tracer = tracing.NewNoopTracer()
	d.monitor = monitoring.NewNoopMonitor("test", logger)
	d.logger = logger

	return d
}

func TestWithScope_FailedBeginIsReturned(t *testing.T) {
	d := newUnreachableClient(t)

	called := false
	err := d.WithScope(context.Background(), Scope{IdentityID: "owner-1", Tier: "tenant_owner"}, func(context.Context) error {
		called = true
		return nil
	})

	if !errors.Is(err, errUnreachable) {
		t.Fatalf("expected %v, got %v", errUnreachable, err)
	}
	if called {
		t.Fatal("scoped function ran without a transaction")
	}
}

func TestWithScope_RequiresIdentity(t *testing.T) {
	d := newUnreachableClient(t)

	if err := d.WithScope(context.Background(), Scope{}, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected an error for an empty identity")
	}
}

func TestStatement_FailedTransactionIsNotBypassed(t *testing.T) {
	d := newUnreachableClient(t)

	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		var n int
		if err := d.Statement(ctx).Select("1").QueryRowContext(ctx).Scan(&n); !errors.Is(err, errUnreachable) {
			t.Errorf("expected row scan to fail with %v, got %v", errUnreachable, err)
		}

		rows, err := d.Statement(ctx).Select("id").From("suppliers").QueryContext(ctx)
		if rows != nil {
			_ = rows.Close()
		}
		return err
	})

	if !errors.Is(err, errUnreachable) {
		t.Fatalf("expected %v, got %v", errUnreachable, err)
	}
}
