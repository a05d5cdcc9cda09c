// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tier

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/storage"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
)

var _ ResolverInterface = (*Resolver)(nil)

type Resolver struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ResolveTier classifies identityID. The system role check runs first and
// short-circuits, the NGO membership is only queried when it misses.
func (r *Resolver) ResolveTier(ctx context.Context, identityID string) (Tier, error) {
	ctx, span := r.tracer.Start(ctx, "tier.Resolver.ResolveTier")
	defer span.End()

	if identityID == "" {
		return NewNone(), nil
	}

	isSystem, err := r.storage.HasSystemRole(ctx, identityID)
	if err != nil {
		r.logger.Errorf("failed to check system role for %s: %v", identityID, err)
		return NewNone(), fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	if isSystem {
		return NewSystemAdmin(), nil
	}

	membership, err := r.storage.FindActiveNGOAdminMembership(ctx, identityID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		r.logger.Errorf("failed to check ngo membership for %s: %v", identityID, err)
		return NewNone(), fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	if membership != nil {
		return NewNGOAdmin(membership.NGOID), nil
	}

	return NewTenantOwner(), nil
}

func NewResolver(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	r := new(Resolver)

	r.storage = storage

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
