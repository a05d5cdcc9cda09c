// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
)

func TestMiddleware_Traced(t *testing.T) {
	logger := logging.NewNoopLogger()
	mdw := NewMiddleware(monitoring.NewNoopMonitor("test", logger), logger, "/api/v0/status", "/api/v0/metrics")

	tests := []struct {
		path   string
		traced bool
	}{
		{path: "/api/v0/status", traced: false},
		{path: "/api/v0/status/", traced: false},
		{path: "/api/v0/metrics", traced: false},
		{path: "/api/v0/suppliers", traced: true},
		{path: "/api/v0/status/extra", traced: true},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, test.path, nil)
			if got := mdw.traced(r); got != test.traced {
				t.Errorf("expected traced=%v, got %v", test.traced, got)
			}
		})
	}
}

func TestSpanName(t *testing.T) {
	r := httptest.NewRequest(http.MethodPatch, "/api/v0/expenses/42", nil)
	if got := spanName("server", r); got != "PATCH /api/v0/expenses/42" {
		t.Errorf("unexpected span name %q", got)
	}
}
