// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/types"
)

type listResult struct {
	items []*Supplier
	err   error
}

// scriptedSource answers the n-th List call with whatever the test sends
// through respond, so completion order can be controlled.
type scriptedSource struct {
	mu          sync.Mutex
	listCalls   int
	createCalls int
	gates       map[int]chan listResult
	createErr   error
	changes     chan struct{}
}

func newScriptedSource() *scriptedSource {
	return &scriptedSource{gates: make(map[int]chan listResult), changes: make(chan struct{}, 1)}
}

func (s *scriptedSource) gate(n int) chan listResult {
	g, ok := s.gates[n]
	if !ok {
		g = make(chan listResult, 1)
		s.gates[n] = g
	}
	return g
}

func (s *scriptedSource) respond(n int, items []*Supplier, err error) {
	s.mu.Lock()
	g := s.gate(n)
	s.mu.Unlock()

	g <- listResult{items: items, err: err}
}

func (s *scriptedSource) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listCalls
}

func (s *scriptedSource) List(ctx context.Context) ([]*Supplier, error) {
	s.mu.Lock()
	s.listCalls++
	g := s.gate(s.listCalls)
	s.mu.Unlock()

	select {
	case r := <-g:
		return r.items, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *scriptedSource) Create(_ context.Context, item *Supplier) (*Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	return item, nil
}

func (s *scriptedSource) Update(_ context.Context, id string, _ Patch) (*Supplier, error) {
	return &Supplier{Scoped: Scoped{ID: id}}, nil
}

func (s *scriptedSource) Remove(context.Context, string) error {
	return nil
}

func (s *scriptedSource) Changes(context.Context) (<-chan struct{}, error) {
	return s.changes, nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(time.Millisecond)
	}
}

func supplier(id string) *Supplier {
	return &Supplier{Scoped: Scoped{ID: id}, Name: id}
}

func TestStore_NewerFetchIsNeverOverwritten(t *testing.T) {
	source := newScriptedSource()
	store := NewStore(Suppliers, source, logging.NewNoopLogger())

	first := make(chan error, 1)
	go func() { first <- store.Refresh(context.Background()) }()
	waitFor(t, func() bool { return source.calls() == 1 })

	second := make(chan error, 1)
	go func() { second <- store.Refresh(context.Background()) }()
	waitFor(t, func() bool { return source.calls() == 2 })

	source.respond(2, []*Supplier{supplier("new")}, nil)
	if err := <-second; err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	source.respond(1, []*Supplier{supplier("stale")}, nil)
	if err := <-first; err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	items := store.Items()
	if len(items) != 1 || items[0].ID != "new" {
		t.Errorf("expected the newest result to be kept, got %+v", items)
	}
}

func TestStore_ResultsAfterCloseAreDiscarded(t *testing.T) {
	source := newScriptedSource()
	store := NewStore(Suppliers, source, logging.NewNoopLogger())

	done := make(chan error, 1)
	go func() { done <- store.Refresh(context.Background()) }()
	waitFor(t, func() bool { return source.calls() == 1 })

	store.Close()
	source.respond(1, []*Supplier{supplier("late")}, nil)

	if err := <-done; !errors.Is(err, ErrStoreClosed) {
		t.Fatalf("expected ErrStoreClosed, got %v", err)
	}

	if len(store.Items()) != 0 || !store.Loading() {
		t.Errorf("expected nothing to be applied, got %+v", store.Items())
	}

	if err := store.Refresh(context.Background()); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("expected ErrStoreClosed, got %v", err)
	}
}

func TestStore_FailedFetchKeepsList(t *testing.T) {
	source := newScriptedSource()
	store := NewStore(Suppliers, source, logging.NewNoopLogger())

	source.respond(1, []*Supplier{supplier("a")}, nil)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	source.respond(2, nil, types.ErrTransientStorage)
	if err := store.Refresh(context.Background()); !errors.Is(err, types.ErrTransientStorage) {
		t.Fatalf("expected a transient error, got %v", err)
	}

	if items := store.Items(); len(items) != 1 || items[0].ID != "a" {
		t.Errorf("expected the previous list, got %+v", items)
	}
	if types.Classify(store.Err()) != types.ErrorClassTransientStorage {
		t.Errorf("expected a transient storage error to be reported, got %v", store.Err())
	}
}

func TestStore_CreateValidatesBeforeAnyRequest(t *testing.T) {
	source := newScriptedSource()
	store := NewStore(Suppliers, source, logging.NewNoopLogger())

	_, err := store.Create(context.Background(), &Supplier{Email: "invalid"})

	if !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if source.createCalls != 0 || source.calls() != 0 {
		t.Errorf("expected no request, got %d creates and %d lists", source.createCalls, source.calls())
	}
	if !errors.Is(store.Err(), types.ErrValidation) {
		t.Errorf("expected the validation error to be reported, got %v", store.Err())
	}
}

func TestStore_FailedCreateLeavesListUnchanged(t *testing.T) {
	source := newScriptedSource()
	store := NewStore(Suppliers, source, logging.NewNoopLogger())

	source.respond(1, []*Supplier{supplier("a")}, nil)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	source.createErr = types.ErrTransientStorage

	if _, err := store.Create(context.Background(), &Supplier{Name: "b"}); !errors.Is(err, types.ErrTransientStorage) {
		t.Fatalf("expected a transient error, got %v", err)
	}

	if items := store.Items(); len(items) != 1 || items[0].ID != "a" {
		t.Errorf("expected the list to be unchanged, got %+v", items)
	}
	if source.calls() != 1 {
		t.Errorf("expected no refetch after a failed write, got %d lists", source.calls())
	}
}

func TestStore_CreateRefetches(t *testing.T) {
	source := newScriptedSource()
	store := NewStore(Suppliers, source, logging.NewNoopLogger())

	source.respond(1, []*Supplier{supplier("b"), supplier("a")}, nil)

	if _, err := store.Create(context.Background(), &Supplier{Name: "b"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if items := store.Items(); len(items) != 2 {
		t.Errorf("expected the refetched list, got %+v", items)
	}
}

func TestStore_UpdateValidatesPatch(t *testing.T) {
	source := newScriptedSource()
	store := NewStore(Suppliers, source, logging.NewNoopLogger())

	if _, err := store.Update(context.Background(), "a", Patch{"owner_id": []byte(`"x"`)}); !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if source.calls() != 0 {
		t.Errorf("expected no request, got %d lists", source.calls())
	}
}

func TestStore_WatchRefetchesOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracer, monitor, logger := noopDeps()
	changes := newFakeChanges()
	service := NewService(Suppliers, newMemStorage(), ownerScope{}, tenantOf(ctrl, map[string]string{"owner-1": "b-1"}), tracer, monitor, logger)

	store := NewStore(Suppliers, NewLocalSource(Suppliers, service, changes, "owner-1"), logger)

	updates := make(chan []*Supplier, 4)
	store.OnUpdate(func(items []*Supplier) { updates <- items })

	ctx, cancel := context.WithCancel(context.Background())
	watched := make(chan error, 1)
	go func() { watched <- store.Watch(ctx) }()

	if items := <-updates; len(items) != 0 {
		t.Fatalf("expected an empty initial list, got %+v", items)
	}

	if _, err := service.Create(context.Background(), "owner-1", &Supplier{Name: "Kamara"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	waitFor(t, func() bool { return changes.publish("suppliers", `{"table":"suppliers","op":"INSERT","owner_id":"owner-1"}`) })

	select {
	case items := <-updates:
		if len(items) != 1 || items[0].Name != "Kamara" || items[0].BusinessID != "b-1" {
			t.Errorf("unexpected list after change %+v", items)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a refetch after the change")
	}

	if changes.owners["suppliers"] != "owner-1" {
		t.Errorf("expected the subscription to be scoped to owner-1, got %q", changes.owners["suppliers"])
	}

	cancel()
	if err := <-watched; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
