// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"context"

	"github.com/canonical/business-access-service/internal/db"
	"github.com/canonical/business-access-service/internal/storage"
	"github.com/canonical/business-access-service/internal/types"
)

type StorageInterface interface {
	ListResources(ctx context.Context, table string, columns []string, scan func(storage.Scanner) error) error
	InsertResource(ctx context.Context, table string, values map[string]any, columns []string, scan func(storage.Scanner) error) error
	UpdateResource(ctx context.Context, table, id string, values map[string]any, columns []string, scan func(storage.Scanner) error) error
	DeleteResource(ctx context.Context, table, id string) error
}

type ScopeInterface interface {
	WithScope(ctx context.Context, scope db.Scope, fn func(context.Context) error) error
}

type TenantResolverInterface interface {
	ResolveOrCreateTenant(ctx context.Context, identityID string) (*types.Business, error)
}

type ChangesInterface interface {
	Subscribe(table, ownerID string) (<-chan []byte, func())
}
