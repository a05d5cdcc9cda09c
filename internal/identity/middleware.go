// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strings"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/pkg/authentication"
)

const (
	// HeaderName is the header used to pass the authenticated identity ID
	HeaderName = "X-Kratos-Authenticated-Identity-Id"
)

type Middleware struct {
	trustHeader bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(trustHeader bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		trustHeader: trustHeader,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// HTTPMiddleware binds the identity set by the authenticating proxy to the request context,
// the header is stripped when the proxy is not trusted so it cannot be forged downstream.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.trustHeader {
			r.Header.Del(HeaderName)
			next.ServeHTTP(w, r)
			return
		}

		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if userID := strings.TrimSpace(r.Header.Get(HeaderName)); userID != "" {
			ctx = authentication.WithIdentityID(ctx, userID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
