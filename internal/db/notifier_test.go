// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"encoding/json"
	"testing"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
)

func newTestNotifier() *Notifier {
	logger := logging.NewNoopLogger()
	return NewNotifier(nil, ChangesChannel, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestNotifier_DispatchByTable(t *testing.T) {
	n := newTestNotifier()

	suppliers, cancelSuppliers := n.Subscribe("suppliers", "")
	defer cancelSuppliers()
	expenses, cancelExpenses := n.Subscribe("expenses", "")
	defer cancelExpenses()

	n.dispatch([]byte(`{"table":"suppliers","op":"INSERT","id":"1"}`))

	select {
	case payload := <-suppliers:
		if string(payload) != `{"table":"suppliers","op":"INSERT","id":"1"}` {
			t.Errorf("unexpected payload %s", payload)
		}
	default:
		t.Fatal("expected a notification for suppliers")
	}

	select {
	case payload := <-expenses:
		t.Fatalf("unexpected notification for expenses: %s", payload)
	default:
	}
}

func TestNotifier_CoalescesPendingNotifications(t *testing.T) {
	n := newTestNotifier()

	ch, cancel := n.Subscribe("sales", "")
	defer cancel()

	n.dispatch([]byte(`{"table":"sales","op":"INSERT"}`))
	n.dispatch([]byte(`{"table":"sales","op":"UPDATE"}`))

	if len(ch) != 1 {
		t.Fatalf("expected a single pending notification, got %d", len(ch))
	}
}

func TestNotifier_CancelClosesChannel(t *testing.T) {
	n := newTestNotifier()

	ch, cancel := n.Subscribe("customers", "")
	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed")
	}

	n.dispatch([]byte(`{"table":"customers"}`))

	if len(n.subscribers) != 0 {
		t.Errorf("expected no subscribers left, got %d", len(n.subscribers))
	}
}

func TestNotifier_MalformedPayloadIsDropped(t *testing.T) {
	n := newTestNotifier()

	ch, cancel := n.Subscribe("suppliers", "")
	defer cancel()

	n.dispatch([]byte(`not-json`))
	n.dispatch([]byte(`{"op":"INSERT"}`))

	if len(ch) != 0 {
		t.Fatalf("expected no notification, got %d", len(ch))
	}
}

func TestNotifier_FiltersByOwner(t *testing.T) {
	n := newTestNotifier()

	mine, cancelMine := n.Subscribe("credit_entries", "owner-1")
	defer cancelMine()
	all, cancelAll := n.Subscribe("credit_entries", "")
	defer cancelAll()

	n.dispatch([]byte(`{"table":"credit_entries","op":"INSERT","owner_id":"owner-2"}`))

	if len(mine) != 0 {
		t.Fatal("expected no notification for another owner's row")
	}
	if len(all) != 1 {
		t.Fatalf("expected the unfiltered subscriber to be notified, got %d", len(all))
	}

	<-all
	n.dispatch([]byte(`{"table":"credit_entries","op":"UPDATE","owner_id":"owner-1"}`))

	if len(mine) != 1 || len(all) != 1 {
		t.Fatalf("expected both subscribers to be notified, got %d and %d", len(mine), len(all))
	}
}

func TestNotifier_ResyncSignalsEverySubscriber(t *testing.T) {
	n := newTestNotifier()

	suppliers, cancelSuppliers := n.Subscribe("suppliers", "owner-1")
	defer cancelSuppliers()
	sales, cancelSales := n.Subscribe("sales", "")
	defer cancelSales()

	// a pending notification already triggers a refetch, resync must not block on it
	n.dispatch([]byte(`{"table":"sales","op":"INSERT","owner_id":"owner-2"}`))

	n.resync()

	select {
	case payload := <-suppliers:
		event := new(types.ChangeEvent)
		if err := json.Unmarshal(payload, event); err != nil {
			t.Fatalf("unexpected payload %s: %v", payload, err)
		}
		if event.Op != types.ChangeOpResync || event.Table != "suppliers" || event.OwnerID != "owner-1" {
			t.Errorf("unexpected resync event %+v", event)
		}
	default:
		t.Fatal("expected a resync signal for suppliers")
	}

	if len(sales) != 1 {
		t.Fatalf("expected a single pending signal for sales, got %d", len(sales))
	}
}
