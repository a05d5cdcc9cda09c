// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/mock/gomock"

	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/session"
	"github.com/canonical/business-access-service/pkg/tier"
)

// withIdentity stands in for the session middleware, the identity is taken
// from the header set by the identity proxy.
func withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Kratos-Authenticated-Identity-Id")
		if id != "" {
			r = r.WithContext(session.WithState(r.Context(), &session.State{IdentityID: id, Tier: tier.NewTenantOwner()}))
		}
		next.ServeHTTP(w, r)
	})
}

func newTestMux(t *testing.T, changes ChangesInterface) (http.Handler, *memStorage) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tracer, monitor, logger := noopDeps()
	store := newMemStorage()

	mux := chi.NewMux()
	RegisterEndpoints(mux, Dependencies{
		Storage: store,
		Scope:   ownerScope{},
		Tenants: tenantOf(ctrl, map[string]string{"owner-1": "b-1"}),
		Changes: changes,

		AllowedOrigins: []string{"https://app.example.com", "https://*.shops.example.com"},

		Tracer:  tracer,
		Monitor: monitor,
		Logger:  logger,
	})

	return withIdentity(mux), store
}

func TestAPI_CRUD(t *testing.T) {
	handler, _ := newTestMux(t, newFakeChanges())

	call := func(method, path, body string, identity bool) (*httptest.ResponseRecorder, *envelope) {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		if identity {
			req.Header.Set("X-Kratos-Authenticated-Identity-Id", "owner-1")
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		env := new(envelope)
		if err := json.Unmarshal(rr.Body.Bytes(), env); err != nil {
			t.Fatalf("failed to decode %s %s response: %v", method, path, err)
		}
		return rr, env
	}

	if rr, _ := call(http.MethodGet, "/expenses", "", false); rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a session, got %d", rr.Code)
	}

	rr, env := call(http.MethodPost, "/expenses", `{"category":"rent","amount":"-5"}`, true)
	if rr.Code != http.StatusBadRequest || env.Class != types.ErrorClassValidation || len(env.Fields) != 1 || env.Fields[0].Field != "amount" {
		t.Errorf("expected an amount validation error, got %d %+v", rr.Code, env.Response)
	}

	rr, env = call(http.MethodPost, "/expenses", `{"category":"rent","amount":"120.50","expense_date":"2026-03-01T00:00:00Z"}`, true)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	created := new(Expense)
	if err := json.Unmarshal(env.Data, created); err != nil {
		t.Fatalf("failed to decode expense: %v", err)
	}
	if created.BusinessID != "b-1" || created.OwnerID != "owner-1" || created.Amount.String() != "120.5" {
		t.Errorf("unexpected expense %+v", created)
	}

	rr, env = call(http.MethodPatch, "/expenses/"+created.ID, `{"description":"March rent"}`, true)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr, env = call(http.MethodGet, "/expenses", "", true)
	listed := make([]*Expense, 0)
	if err := json.Unmarshal(env.Data, &listed); err != nil || rr.Code != http.StatusOK {
		t.Fatalf("failed to list expenses: %d %v", rr.Code, err)
	}
	if len(listed) != 1 || listed[0].Description != "March rent" {
		t.Errorf("expected the updated expense, got %+v", listed)
	}

	if rr, _ := call(http.MethodDelete, "/expenses/"+created.ID, "", true); rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}

	if rr, env := call(http.MethodDelete, "/expenses/"+created.ID, "", true); rr.Code != http.StatusNotFound || env.Class != types.ErrorClassNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestAPI_WatchStreamsChanges(t *testing.T) {
	changes := newFakeChanges()
	handler, _ := newTestMux(t, changes)

	server := httptest.NewServer(handler)
	defer server.Close()

	header := http.Header{}
	header.Set("X-Kratos-Authenticated-Identity-Id", "owner-1")

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/sales/changes", header)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	waitFor(t, func() bool {
		return changes.publish("sales", `{"table":"sales","op":"INSERT","id":"s-1","owner_id":"owner-1","business_id":"b-1"}`)
	})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	event := new(types.ChangeEvent)
	if err := conn.ReadJSON(event); err != nil {
		t.Fatalf("failed to read change: %v", err)
	}

	if event.Table != "sales" || event.ID != "s-1" || event.Op != "INSERT" {
		t.Errorf("unexpected event %+v", event)
	}

	if changes.owners["sales"] != "owner-1" {
		t.Errorf("expected the stream to be scoped to owner-1, got %q", changes.owners["sales"])
	}
}

func TestAPI_WatchChecksOrigin(t *testing.T) {
	handler, _ := newTestMux(t, newFakeChanges())

	server := httptest.NewServer(handler)
	defer server.Close()

	tests := []struct {
		origin  string
		allowed bool
	}{
		{origin: "", allowed: true},
		{origin: server.URL, allowed: true},
		{origin: "https://app.example.com", allowed: true},
		{origin: "https://kiosk.shops.example.com", allowed: true},
		{origin: "https://evil.example.org", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			header := http.Header{}
			header.Set("X-Kratos-Authenticated-Identity-Id", "owner-1")
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}

			conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/sales/changes", header)
			if conn != nil {
				defer conn.Close()
			}

			if tt.allowed && err != nil {
				t.Fatalf("expected the stream to open, got %v", err)
			}
			if !tt.allowed {
				if err == nil {
					t.Fatal("expected the origin to be rejected")
				}
				if resp == nil || resp.StatusCode != http.StatusForbidden {
					t.Fatalf("expected 403, got %v", resp)
				}
			}
		})
	}
}

func TestHTTPSource_StoreOverHTTP(t *testing.T) {
	handler, _ := newTestMux(t, newFakeChanges())

	server := httptest.NewServer(handler)
	defer server.Close()

	_, _, logger := noopDeps()
	source := NewHTTPSource(Customers, server.URL+"/", WithIdentity("owner-1"))
	store := NewStore(Customers, source, logger)

	if _, err := store.Create(context.Background(), &Customer{Name: "Aminata"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	items := store.Items()
	if len(items) != 1 || items[0].Name != "Aminata" || items[0].BusinessID != "b-1" {
		t.Fatalf("expected the created customer, got %+v", items)
	}

	_, err := source.Update(context.Background(), items[0].ID, Patch{"email": json.RawMessage(`"nope"`)})
	var verr *types.ValidationError
	if !errors.As(err, &verr) || verr.Fields[0].Field != "email" {
		t.Errorf("expected an email validation error, got %v", err)
	}

	if err := source.Remove(context.Background(), "missing"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}

	anonymous := NewHTTPSource(Customers, server.URL)
	if _, err := anonymous.List(context.Background()); !errors.Is(err, types.ErrNotAuthenticated) {
		t.Errorf("expected not authenticated, got %v", err)
	}
}
