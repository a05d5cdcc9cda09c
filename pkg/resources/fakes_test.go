// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/canonical/business-access-service/internal/db"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/storage"
	"github.com/canonical/business-access-service/internal/tracing"
)

type scopeKey struct{}

// ownerScope binds the identity the way the row security settings do.
type ownerScope struct{}

func (ownerScope) WithScope(ctx context.Context, scope db.Scope, fn func(context.Context) error) error {
	return fn(context.WithValue(ctx, scopeKey{}, scope.IdentityID))
}

// memStorage keeps rows in memory and only exposes those owned by the scoped
// identity, mirroring the row security policies.
type memStorage struct {
	mu   sync.Mutex
	rows map[string][]map[string]any
}

func newMemStorage() *memStorage {
	return &memStorage{rows: make(map[string][]map[string]any)}
}

func owner(ctx context.Context) string {
	id, _ := ctx.Value(scopeKey{}).(string)
	return id
}

func (m *memStorage) ListResources(ctx context.Context, table string, columns []string, scan func(storage.Scanner) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.rows[table]
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i]["owner_id"] != owner(ctx) {
			continue
		}
		if err := scan(memRow{columns: columns, row: rows[i]}); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStorage) InsertResource(ctx context.Context, table string, values map[string]any, columns []string, scan func(storage.Scanner) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if values["owner_id"] != owner(ctx) {
		return fmt.Errorf("%s: %w", table, storage.ErrRowSecurityViolation)
	}

	row := make(map[string]any, len(values)+1)
	for k, v := range values {
		row[k] = v
	}
	row["created_at"] = time.Now()

	m.rows[table] = append(m.rows[table], row)

	return scan(memRow{columns: columns, row: row})
}

func (m *memStorage) UpdateResource(ctx context.Context, table, id string, values map[string]any, columns []string, scan func(storage.Scanner) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range m.rows[table] {
		if row["id"] != id || row["owner_id"] != owner(ctx) {
			continue
		}
		for k, v := range values {
			row[k] = v
		}
		return scan(memRow{columns: columns, row: row})
	}

	return storage.ErrNotFound
}

func (m *memStorage) DeleteResource(ctx context.Context, table, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.rows[table]
	for i, row := range rows {
		if row["id"] == id && row["owner_id"] == owner(ctx) {
			m.rows[table] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}

	return storage.ErrNotFound
}

func (m *memStorage) count(table string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.rows[table])
}

type memRow struct {
	columns []string
	row     map[string]any
}

func (r memRow) Scan(dest ...any) error {
	if len(dest) != len(r.columns) {
		return fmt.Errorf("expected %d destinations, got %d", len(r.columns), len(dest))
	}

	for i, col := range r.columns {
		v, ok := r.row[col]
		if !ok || v == nil {
			continue
		}

		target := reflect.ValueOf(dest[i]).Elem()
		value := reflect.ValueOf(v)
		if !value.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("cannot scan %T into %s", v, target.Type())
		}
		target.Set(value)
	}

	return nil
}

// fakeChanges hands out one channel per table, tests publish on it.
type fakeChanges struct {
	mu     sync.Mutex
	events map[string]chan []byte
	owners map[string]string
}

func newFakeChanges() *fakeChanges {
	return &fakeChanges{events: make(map[string]chan []byte), owners: make(map[string]string)}
}

func (f *fakeChanges) Subscribe(table, ownerID string) (<-chan []byte, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan []byte, 8)
	f.events[table] = ch
	f.owners[table] = ownerID

	return ch, func() {}
}

func (f *fakeChanges) publish(table string, payload string) bool {
	f.mu.Lock()
	ch, ok := f.events[table]
	f.mu.Unlock()

	if !ok {
		return false
	}

	ch <- []byte(payload)
	return true
}

func noopDeps() (tracing.TracingInterface, monitoring.MonitorInterface, logging.LoggerInterface) {
	logger := logging.NewNoopLogger()
	return tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger
}
