// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/business-access-service/internal/db"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/tier"
)

type ResolverInterface interface {
	FindTenant(ctx context.Context, identityID string) (*types.Business, error)
	ResolveOrCreateTenant(ctx context.Context, identityID string) (*types.Business, error)
}

type ServiceInterface interface {
	ResolverInterface
	UpdateBusiness(ctx context.Context, identityID string, profile *BusinessProfile) (*types.Business, error)
	ListBusinesses(ctx context.Context, actor tier.Tier, actorID string, page, size int64) ([]*types.BusinessOwner, error)
	SetBusinessNGO(ctx context.Context, actor tier.Tier, actorID, businessID string, ngoID *string) error
}

type StorageInterface interface {
	FindBusinessByOwner(ctx context.Context, ownerID string) (*types.Business, error)
	CreateBusiness(ctx context.Context, b *types.Business) (*types.Business, error)
	UpdateBusiness(ctx context.Context, id string, fields map[string]any) (*types.Business, error)
	ListBusinesses(ctx context.Context, ngoID string, page, size int64) ([]*types.Business, error)
	SetBusinessNGO(ctx context.Context, id string, ngoID *string) error
}

type ScopeInterface interface {
	WithScope(ctx context.Context, scope db.Scope, fn func(context.Context) error) error
}

type KratosClientInterface interface {
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}
