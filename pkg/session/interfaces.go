// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/tier"
)

type ManagerInterface interface {
	SignIn(ctx context.Context, identityID string) (*State, error)
	SignOut(identityID string)
	Ensure(ctx context.Context, identityID string) (*State, error)
	Update(identityID string, fn func(*State)) bool
}

type TierResolverInterface interface {
	ResolveTier(ctx context.Context, identityID string) (tier.Tier, error)
}

type TenantFinderInterface interface {
	FindTenant(ctx context.Context, identityID string) (*types.Business, error)
}

type OnboardingInterface interface {
	NeedsOnboarding(ctx context.Context, identityID string) (bool, error)
}
