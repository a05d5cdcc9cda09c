// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"github.com/go-chi/chi/v5"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
)

// Dependencies are shared by the services of every entity.
type Dependencies struct {
	Storage StorageInterface
	Scope   ScopeInterface
	Tenants TenantResolverInterface
	Changes ChangesInterface

	// AllowedOrigins are the cross origin callers allowed to open change streams
	AllowedOrigins []string

	Tracer  tracing.TracingInterface
	Monitor monitoring.MonitorInterface
	Logger  logging.LoggerInterface
}

// RegisterEndpoints mounts the CRUD and change stream endpoints of every entity.
func RegisterEndpoints(mux chi.Router, deps Dependencies) {
	register(mux, Suppliers, deps)
	register(mux, Customers, deps)
	register(mux, Inventory, deps)
	register(mux, Expenses, deps)
	register(mux, Sales, deps)
	register(mux, CreditEntries, deps)
}

func register[E any](mux chi.Router, entity *Entity[E], deps Dependencies) {
	service := NewService(entity, deps.Storage, deps.Scope, deps.Tenants, deps.Tracer, deps.Monitor, deps.Logger)
	NewAPI(entity, service, deps.Changes, deps.AllowedOrigins, deps.Logger).RegisterEndpoints(mux)
}
