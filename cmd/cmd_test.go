// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/identity"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/access"
)

func TestMigrateArgs(t *testing.T) {
	tests := []struct {
		args  []string
		valid bool
	}{
		{args: nil, valid: true},
		{args: []string{"up"}, valid: true},
		{args: []string{"check"}, valid: true},
		{args: []string{"down"}, valid: true},
		{args: []string{"down", "3"}, valid: true},
		{args: []string{"down", "-1"}, valid: false},
		{args: []string{"down", "x"}, valid: false},
		{args: []string{"up", "3"}, valid: false},
		{args: []string{"redo"}, valid: false},
		{args: []string{"down", "1", "2"}, valid: false},
	}

	for _, test := range tests {
		err := migrateArgs(migrateCmd, test.args)
		if (err == nil) != test.valid {
			t.Errorf("args %v: expected valid=%v, got %v", test.args, test.valid, err)
		}
	}
}

func TestLookupRecords(t *testing.T) {
	for _, name := range []string{"suppliers", "customers", "inventory", "expenses", "sales", "credit"} {
		if _, err := lookupRecords(name); err != nil {
			t.Errorf("expected %s to be a record type: %v", name, err)
		}
	}

	if _, err := lookupRecords("invoices"); err == nil {
		t.Error("expected invoices to be rejected")
	}
}

func TestPageGrantRequest(t *testing.T) {
	req, err := pageGrantRequest([]string{"identity-1", "reports"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.IdentityID != "identity-1" || req.Page != string(access.Reports) {
		t.Errorf("unexpected request %+v", req)
	}

	if _, err := pageGrantRequest([]string{"identity-1", "admin"}); err == nil {
		t.Error("expected the admin panel to be rejected as a page")
	}
}

func TestAPIClient_Do(t *testing.T) {
	var gotIdentity, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity = r.Header.Get(identity.HeaderName)
		gotAuth = r.Header.Get("Authorization")

		switch r.URL.Path {
		case "/api/v0/business":
			httptypes.WriteJSON(w, http.StatusOK, types.Business{ID: "b-1", Name: "Shop"}, "business")
		default:
			httptypes.WriteError(w, types.ErrForbidden)
		}
	}))
	defer srv.Close()

	endpoint, identityID, bearerToken = srv.URL+"/", "identity-1", "tok"
	defer func() { endpoint, identityID, bearerToken = "", "", "" }()

	business := new(types.Business)
	if err := newAPIClient().do(context.Background(), http.MethodGet, "/business", nil, business); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if business.ID != "b-1" || business.Name != "Shop" {
		t.Errorf("unexpected business %+v", business)
	}
	if gotIdentity != "identity-1" || gotAuth != "Bearer tok" {
		t.Errorf("expected credentials to be forwarded, got %q and %q", gotIdentity, gotAuth)
	}

	err := newAPIClient().do(context.Background(), http.MethodGet, "/admin/businesses", nil, nil)
	if !errors.Is(err, types.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestResolveIdentity(t *testing.T) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	id, err := resolveIdentity(context.Background(), "0198c1a2-identity", "", tracer, monitor, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "0198c1a2-identity" {
		t.Fatalf("expected id to pass through, got %q", id)
	}

	if _, err := resolveIdentity(context.Background(), "owner@example.com", "", tracer, monitor, logger); err == nil {
		t.Fatal("expected an error without a kratos admin url")
	}
}
