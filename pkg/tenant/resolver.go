// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/business-access-service/internal/db"
	"github.com/canonical/business-access-service/internal/storage"
	"github.com/canonical/business-access-service/internal/types"
)

// FindTenant returns the business owned by identityID, nil when there is none yet.
func (s *Service) FindTenant(ctx context.Context, identityID string) (*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.FindTenant")
	defer span.End()

	if identityID == "" {
		return nil, types.ErrNotAuthenticated
	}

	var business *types.Business

	err := s.db.WithScope(ctx, ownerScope(identityID), func(txCtx context.Context) error {
		b, err := s.storage.FindBusinessByOwner(txCtx, identityID)
		if err != nil {
			return err
		}
		business = b
		return nil
	})

	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		s.logger.Errorf("failed to look up business of %s: %v", identityID, err)
		return nil, fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	return business, nil
}

// ResolveOrCreateTenant returns the business of identityID, provisioning one
// with default values on first use. Concurrent calls for the same owner in
// this process share a single lookup, across processes the unique owner
// constraint decides the winner and losers read its row back.
func (s *Service) ResolveOrCreateTenant(ctx context.Context, identityID string) (*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ResolveOrCreateTenant")
	defer span.End()

	if identityID == "" {
		return nil, types.ErrNotAuthenticated
	}

	ch := s.inflight.DoChan(identityID, func() (interface{}, error) {
		return s.resolveOrCreate(context.WithoutCancel(ctx), identityID)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*types.Business), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Service) resolveOrCreate(ctx context.Context, identityID string) (*types.Business, error) {
	existing, err := s.FindTenant(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return existing, nil
	}

	var created *types.Business

	err = s.db.WithScope(ctx, ownerScope(identityID), func(txCtx context.Context) error {
		b, err := s.storage.CreateBusiness(txCtx, types.NewDefaultBusiness(identityID))
		if err != nil {
			return err
		}
		created = b
		return nil
	})

	switch {
	case err == nil:
		s.logger.Infof("provisioned business %s for %s", created.ID, identityID)
		s.notify(created)
		return created, nil
	case errors.Is(err, storage.ErrDuplicateKey):
		// the failed insert aborted its transaction, read back in a new one
		s.logger.Debugf("business of %s created concurrently, reading it back", identityID)
	default:
		s.logger.Errorf("failed to provision business for %s: %v", identityID, err)
		return nil, fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	winner, err := s.FindTenant(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if winner == nil {
		return nil, fmt.Errorf("%w: business of %s missing after conflicting insert", types.ErrTransientStorage, identityID)
	}

	return winner, nil
}

// OnBusinessChange registers fn to be called with every business created or
// updated through the service. Must be called before the service is used.
func (s *Service) OnBusinessChange(fn func(*types.Business)) {
	s.hooks = append(s.hooks, fn)
}

func (s *Service) notify(b *types.Business) {
	for _, fn := range s.hooks {
		fn(b)
	}
}

func ownerScope(identityID string) db.Scope {
	return db.Scope{IdentityID: identityID}
}
