// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/tier"
)

// StorageInterface is the subset of the internal/storage interface used on registration.
type StorageInterface interface {
	SeedProfile(ctx context.Context, identityID string) error
}

type TierResolverInterface interface {
	ResolveTier(ctx context.Context, identityID string) (tier.Tier, error)
}

type TenantFinderInterface interface {
	FindTenant(ctx context.Context, identityID string) (*types.Business, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) error
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
