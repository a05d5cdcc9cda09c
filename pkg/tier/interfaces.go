// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tier

import (
	"context"

	"github.com/canonical/business-access-service/internal/types"
)

type ResolverInterface interface {
	ResolveTier(ctx context.Context, identityID string) (Tier, error)
}

type StorageInterface interface {
	HasSystemRole(ctx context.Context, identityID string) (bool, error)
	FindActiveNGOAdminMembership(ctx context.Context, identityID string) (*types.NGOMembership, error)
}
