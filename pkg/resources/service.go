// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/canonical/business-access-service/internal/db"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/storage"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/internal/validation"
)

var _ ServiceInterface[Supplier] = (*Service[Supplier])(nil)

type ServiceInterface[E any] interface {
	List(ctx context.Context, identityID string) ([]*E, error)
	Create(ctx context.Context, identityID string, item *E) (*E, error)
	Update(ctx context.Context, identityID, id string, patch Patch) (*E, error)
	Remove(ctx context.Context, identityID, id string) error
}

// Service performs the CRUD operations of one entity. Every statement runs
// in a transaction scoped to the caller, row security hides everything the
// caller does not own so no statement filters by owner or business itself.
type Service[E any] struct {
	entity   *Entity[E]
	storage  StorageInterface
	db       ScopeInterface
	tenants  TenantResolverInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service[E]) List(ctx context.Context, identityID string) ([]*E, error) {
	ctx, span := s.tracer.Start(ctx, "resources.Service.List")
	defer span.End()

	if identityID == "" {
		return nil, types.ErrNotAuthenticated
	}

	items := make([]*E, 0)

	err := s.db.WithScope(ctx, scope(identityID), func(txCtx context.Context) error {
		return s.storage.ListResources(txCtx, s.entity.Table(), s.entity.Columns(), func(row storage.Scanner) error {
			item, err := s.entity.scan(row)
			if err != nil {
				return err
			}
			items = append(items, item)
			return nil
		})
	})

	if err != nil {
		s.logger.Errorf("failed to list %s of %s: %v", s.entity.Name(), identityID, err)
		return nil, classify(err)
	}

	return items, nil
}

// Create validates item, resolves the caller's business, provisioning it on
// first use, and inserts item stamped with the owner and business.
func (s *Service[E]) Create(ctx context.Context, identityID string, item *E) (*E, error) {
	ctx, span := s.tracer.Start(ctx, "resources.Service.Create")
	defer span.End()

	if identityID == "" {
		return nil, types.ErrNotAuthenticated
	}

	if item == nil {
		return nil, types.NewValidationError("body", "required")
	}

	if err := s.validate.Struct(item); err != nil {
		return nil, validation.ToError(err)
	}

	business, err := s.tenants.ResolveOrCreateTenant(ctx, identityID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s id: %w", s.entity.Name(), err)
	}

	values := s.entity.values(item)
	values["id"] = id.String()
	values["owner_id"] = identityID
	values["business_id"] = business.ID

	var created *E

	err = s.db.WithScope(ctx, scope(identityID), func(txCtx context.Context) error {
		return s.storage.InsertResource(txCtx, s.entity.Table(), values, s.entity.Columns(), func(row storage.Scanner) error {
			c, err := s.entity.scan(row)
			if err != nil {
				return err
			}
			created = c
			return nil
		})
	})

	if err != nil {
		s.logger.Errorf("failed to create %s for %s: %v", s.entity.Name(), identityID, err)
		return nil, classify(err)
	}

	s.logger.Debugf("created %s %s for business %s", s.entity.Name(), id, business.ID)

	return created, nil
}

func (s *Service[E]) Update(ctx context.Context, identityID, id string, patch Patch) (*E, error) {
	ctx, span := s.tracer.Start(ctx, "resources.Service.Update")
	defer span.End()

	if identityID == "" {
		return nil, types.ErrNotAuthenticated
	}

	if id == "" {
		return nil, types.NewValidationError("id", "required")
	}

	item, fields, values, err := s.entity.decode(patch)
	if err != nil {
		return nil, err
	}

	if err := s.validate.StructPartial(item, fields...); err != nil {
		return nil, validation.ToError(err)
	}

	var updated *E

	err = s.db.WithScope(ctx, scope(identityID), func(txCtx context.Context) error {
		return s.storage.UpdateResource(txCtx, s.entity.Table(), id, values, s.entity.Columns(), func(row storage.Scanner) error {
			u, err := s.entity.scan(row)
			if err != nil {
				return err
			}
			updated = u
			return nil
		})
	})

	if err != nil {
		s.logger.Errorf("failed to update %s %s for %s: %v", s.entity.Name(), id, identityID, err)
		return nil, classify(err)
	}

	return updated, nil
}

func (s *Service[E]) Remove(ctx context.Context, identityID, id string) error {
	ctx, span := s.tracer.Start(ctx, "resources.Service.Remove")
	defer span.End()

	if identityID == "" {
		return types.ErrNotAuthenticated
	}

	if id == "" {
		return types.NewValidationError("id", "required")
	}

	err := s.db.WithScope(ctx, scope(identityID), func(txCtx context.Context) error {
		return s.storage.DeleteResource(txCtx, s.entity.Table(), id)
	})

	if err != nil {
		s.logger.Errorf("failed to remove %s %s for %s: %v", s.entity.Name(), id, identityID, err)
		return classify(err)
	}

	return nil
}

func scope(identityID string) db.Scope {
	return db.Scope{IdentityID: identityID}
}

// classify keeps errors the caller can act on and reports everything else
// as a transient storage failure.
func classify(err error) error {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrForbidden),
		errors.Is(err, types.ErrTransientStorage):
		return err
	default:
		return fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}
}

func NewService[E any](
	entity *Entity[E],
	storage StorageInterface,
	scope ScopeInterface,
	tenants TenantResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service[E] {
	s := new(Service[E])

	s.entity = entity
	s.storage = storage
	s.db = scope
	s.tenants = tenants
	s.validate = validation.NewValidator()

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
