// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"net/http"
	"slices"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
)

// Middleware wraps handlers with an otelhttp server span, probes listed in
// untraced are not recorded.
type Middleware struct {
	untraced []string

	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (mdw *Middleware) OpenTelemetry(handler http.Handler) http.Handler {
	return otelhttp.NewHandler(
		handler,
		"server",
		otelhttp.WithFilter(mdw.traced),
		otelhttp.WithSpanNameFormatter(spanName),
	)
}

func (mdw *Middleware) traced(r *http.Request) bool {
	return !slices.Contains(mdw.untraced, strings.TrimSuffix(r.URL.Path, "/"))
}

func spanName(_ string, r *http.Request) string {
	return r.Method + " " + r.URL.Path
}

// NewMiddleware returns the tracing middleware, requests to the untraced paths
// such as liveness probes produce no spans.
func NewMiddleware(monitor monitoring.MonitorInterface, logger logging.LoggerInterface, untraced ...string) *Middleware {
	mdw := new(Middleware)

	mdw.untraced = untraced

	mdw.monitor = monitor
	mdw.logger = logger

	return mdw
}
