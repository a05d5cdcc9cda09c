// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/business-access-service/pkg/tier"
)

type ServiceInterface interface {
	Menu(ctx context.Context, identityID string, t tier.Tier) *Menu
	GrantPage(ctx context.Context, actor tier.Tier, actorID, identityID string, page PageKey) error
	RevokePage(ctx context.Context, actor tier.Tier, actorID, identityID string, page PageKey) error
	ResetPages(ctx context.Context, actor tier.Tier, actorID, identityID string) error
}

// OverrideSourceInterface supplies explicit page grants for an identity.
type OverrideSourceInterface interface {
	ListPageGrants(ctx context.Context, identityID string) ([]string, error)
	AssignPageViewer(ctx context.Context, identityID, page string) error
	RevokePageViewer(ctx context.Context, identityID, page string) error
	ClearPageGrants(ctx context.Context, identityID string) error
}
