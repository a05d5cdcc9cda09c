// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/business-access-service/internal/identity"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/pkg/access"
	"github.com/canonical/business-access-service/pkg/authentication"
	"github.com/canonical/business-access-service/pkg/guard"
	"github.com/canonical/business-access-service/pkg/metrics"
	"github.com/canonical/business-access-service/pkg/onboarding"
	"github.com/canonical/business-access-service/pkg/resources"
	"github.com/canonical/business-access-service/pkg/session"
	"github.com/canonical/business-access-service/pkg/status"
	"github.com/canonical/business-access-service/pkg/tenant"
	"github.com/canonical/business-access-service/pkg/webhooks"
)

// APIPrefix is where every endpoint is mounted.
const APIPrefix = "/api/v0"

type SessionManagerInterface interface {
	session.ManagerInterface
	Middleware(http.Handler) http.Handler
}

func NewRouter(
	sessions SessionManagerInterface,
	accessService access.ServiceInterface,
	routeGuard guard.GuardInterface,
	tenantService tenant.ServiceInterface,
	onboardingService onboarding.ServiceInterface,
	webhookService webhooks.ServiceInterface,
	resourceDeps resources.Dependencies,
	authMiddleware *authentication.Middleware,
	identityMiddleware *identity.Middleware,
	db status.PingerInterface,
	allowedOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(allowedOrigins),
		identityMiddleware.HTTPMiddleware,
	)

	router.Use(middlewares...)

	api := chi.NewRouter()

	metrics.NewAPI(logger).RegisterEndpoints(api)
	status.NewAPI(db, tracer, monitor, logger).RegisterEndpoints(api)
	webhooks.NewAPI(webhookService, logger).RegisterEndpoints(api)

	// the guard answers anonymous callers with a redirect to sign in
	api.Group(func(r chi.Router) {
		r.Use(authMiddleware.OptionalAuthenticate())
		guard.NewAPI(routeGuard).RegisterEndpoints(r)
	})

	api.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate())
		session.NewAPI(sessions, logger).RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(sessions.Middleware)

			access.NewAPI(accessService).RegisterEndpoints(r)
			tenant.NewAPI(tenantService, logger).RegisterEndpoints(r)
			onboarding.NewAPI(onboardingService, sessions).RegisterEndpoints(r)
			resourceDeps.AllowedOrigins = allowedOrigins
			resources.RegisterEndpoints(r, resourceDeps)
		})
	})

	router.Mount(APIPrefix, api)

	return tracing.NewMiddleware(monitor, logger, APIPrefix+"/status", APIPrefix+"/metrics").OpenTelemetry(router)
}
