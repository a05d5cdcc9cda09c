// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/canonical/business-access-service/internal/db"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/internal/validation"
	"github.com/canonical/business-access-service/pkg/tier"
)

const emailLookupConcurrency = 8

var _ ServiceInterface = (*Service)(nil)

// BusinessProfile is a partial update of the owner editable business fields.
type BusinessProfile struct {
	Name         *string `json:"name,omitempty" validate:"omitnil,min=1,max=120"`
	BusinessType *string `json:"business_type,omitempty" validate:"omitnil,min=1,max=64"`
	Currency     *string `json:"currency,omitempty" validate:"omitnil,currency"`
}

func (p *BusinessProfile) fields() map[string]any {
	fields := make(map[string]any)

	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.BusinessType != nil {
		fields["business_type"] = *p.BusinessType
	}
	if p.Currency != nil {
		fields["currency"] = *p.Currency
	}

	return fields
}

type Service struct {
	storage  StorageInterface
	db       ScopeInterface
	kratos   KratosClientInterface
	validate *validator.Validate

	inflight singleflight.Group
	hooks    []func(*types.Business)

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// UpdateBusiness applies profile to the caller's business, provisioning it first when needed.
func (s *Service) UpdateBusiness(ctx context.Context, identityID string, profile *BusinessProfile) (*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateBusiness")
	defer span.End()

	if profile == nil {
		return nil, types.NewValidationError("body", "required")
	}

	if err := s.validate.Struct(profile); err != nil {
		return nil, validation.ToError(err)
	}

	business, err := s.ResolveOrCreateTenant(ctx, identityID)
	if err != nil {
		return nil, err
	}

	var updated *types.Business

	err = s.db.WithScope(ctx, ownerScope(identityID), func(txCtx context.Context) error {
		b, err := s.storage.UpdateBusiness(txCtx, business.ID, profile.fields())
		if err != nil {
			return err
		}
		updated = b
		return nil
	})

	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, err
		}
		s.logger.Errorf("failed to update business %s: %v", business.ID, err)
		return nil, fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	s.notify(updated)

	return updated, nil
}

// ListBusinesses returns the businesses administered by actor, system
// administrators see all of them and NGO administrators their NGO's.
func (s *Service) ListBusinesses(ctx context.Context, actor tier.Tier, actorID string, page, size int64) ([]*types.BusinessOwner, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListBusinesses")
	defer span.End()

	if !actor.IsAdmin() {
		s.logger.Security().AuthzFailure(actorID, "businesses")
		return nil, types.ErrForbidden
	}

	var businesses []*types.Business

	err := s.db.WithScope(ctx, adminScope(actor, actorID), func(txCtx context.Context) error {
		// row security also lets NGO administrators see the business they
		// own, the filter keeps the listing to their NGO
		bs, err := s.storage.ListBusinesses(txCtx, actor.NGOID, page, size)
		if err != nil {
			return err
		}
		businesses = bs
		return nil
	})

	if err != nil {
		s.logger.Errorf("failed to list businesses for %s: %v", actorID, err)
		return nil, fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	owners := make([]*types.BusinessOwner, len(businesses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(emailLookupConcurrency)

	for i, b := range businesses {
		owners[i] = &types.BusinessOwner{Business: *b}

		g.Go(func() error {
			email, err := s.kratos.GetIdentityEmail(gctx, b.OwnerID)
			if err != nil {
				// the listing stays usable without the email
				s.logger.Warnf("failed to look up email of %s: %v", b.OwnerID, err)
				return nil
			}
			owners[i].OwnerEmail = email
			return nil
		})
	}

	_ = g.Wait()

	return owners, nil
}

// SetBusinessNGO affiliates a business with an NGO, a nil ngoID removes the affiliation.
func (s *Service) SetBusinessNGO(ctx context.Context, actor tier.Tier, actorID, businessID string, ngoID *string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetBusinessNGO")
	defer span.End()

	if actor.Kind != tier.SystemAdmin {
		s.logger.Security().AuthzFailure(actorID, "business:"+businessID)
		return types.ErrForbidden
	}

	if businessID == "" {
		return types.NewValidationError("id", "required")
	}

	if ngoID != nil && *ngoID == "" {
		return types.NewValidationError("ngo_id", "must not be empty")
	}

	err := s.db.WithScope(ctx, adminScope(actor, actorID), func(txCtx context.Context) error {
		return s.storage.SetBusinessNGO(txCtx, businessID, ngoID)
	})

	switch {
	case err == nil:
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrValidation):
		return err
	default:
		s.logger.Errorf("failed to set ngo of business %s: %v", businessID, err)
		return fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	s.logger.Security().AdminAction(actorID, "set_business_ngo", "business:"+businessID)

	return nil
}

func adminScope(actor tier.Tier, actorID string) db.Scope {
	return db.Scope{IdentityID: actorID, Tier: string(actor.Kind), NGOID: actor.NGOID}
}

func NewService(
	storage StorageInterface,
	scope ScopeInterface,
	kratos KratosClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.db = scope
	s.kratos = kratos
	s.validate = validation.NewValidator()

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
