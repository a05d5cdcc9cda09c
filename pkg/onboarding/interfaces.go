// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"

	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/session"
	"github.com/canonical/business-access-service/pkg/tenant"
)

type ServiceInterface interface {
	NeedsOnboarding(ctx context.Context, identityID string) (bool, error)
	Complete(ctx context.Context, identityID string, req *CompleteRequest) (*types.Business, error)
}

type StorageInterface interface {
	GetProfile(ctx context.Context, identityID string) (*types.Profile, error)
	CompleteProfile(ctx context.Context, identityID string) error
}

type BusinessUpdaterInterface interface {
	UpdateBusiness(ctx context.Context, identityID string, profile *tenant.BusinessProfile) (*types.Business, error)
}

type SessionUpdaterInterface interface {
	Update(identityID string, fn func(*session.State)) bool
}
