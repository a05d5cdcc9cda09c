// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logging.NewNoopLogger()
	return NewClient(srv.URL, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)
}

func TestClient_GetIdentityEmail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/identities/id-1" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         "id-1",
			"schema_id":  "default",
			"schema_url": "http://kratos/schemas/default",
			"traits":     map[string]any{"email": "owner@shop.test"},
		})
	})

	email, err := c.GetIdentityEmail(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "owner@shop.test" {
		t.Errorf("expected owner@shop.test, got %q", email)
	}
}

func TestClient_GetIdentityIDByEmail(t *testing.T) {
	tests := []struct {
		name       string
		identities []map[string]any
		expectedID string
	}{
		{
			name:       "found",
			identities: []map[string]any{{"id": "id-7", "schema_id": "default", "schema_url": "http://kratos/schemas/default", "traits": map[string]any{}}},
			expectedID: "id-7",
		},
		{
			name:       "not found",
			identities: []map[string]any{},
			expectedID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("credentials_identifier") != "owner@shop.test" {
					t.Errorf("unexpected query %q", r.URL.RawQuery)
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(tt.identities)
			})

			id, err := c.GetIdentityIDByEmail(context.Background(), "owner@shop.test")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.expectedID {
				t.Errorf("expected %q, got %q", tt.expectedID, id)
			}
		})
	}
}
