// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/storage"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/internal/validation"
	"github.com/canonical/business-access-service/pkg/tenant"
)

var _ ServiceInterface = (*Service)(nil)

// CompleteRequest is the business profile chosen at the end of onboarding.
type CompleteRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	BusinessType string `json:"business_type" validate:"required,max=64"`
	Currency     string `json:"currency" validate:"required,currency"`
}

type Service struct {
	storage    StorageInterface
	businesses BusinessUpdaterInterface
	validate   *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NeedsOnboarding is true until the identity completes onboarding, an
// identity without a profile has not started it.
func (s *Service) NeedsOnboarding(ctx context.Context, identityID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.NeedsOnboarding")
	defer span.End()

	profile, err := s.storage.GetProfile(ctx, identityID)
	if errors.Is(err, storage.ErrNotFound) {
		return true, nil
	}

	if err != nil {
		s.logger.Errorf("failed to read profile of %s: %v", identityID, err)
		return false, fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	return !profile.OnboardingCompleted, nil
}

// Complete applies the chosen profile to the identity's business, creating
// it when needed, and marks onboarding as done.
func (s *Service) Complete(ctx context.Context, identityID string, req *CompleteRequest) (*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "onboarding.Service.Complete")
	defer span.End()

	if req == nil {
		return nil, types.NewValidationError("body", "required")
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, validation.ToError(err)
	}

	business, err := s.businesses.UpdateBusiness(ctx, identityID, &tenant.BusinessProfile{
		Name:         &req.Name,
		BusinessType: &req.BusinessType,
		Currency:     &req.Currency,
	})
	if err != nil {
		return nil, err
	}

	if err := s.storage.CompleteProfile(ctx, identityID); err != nil {
		s.logger.Errorf("failed to complete onboarding of %s: %v", identityID, err)
		return nil, fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	s.logger.Infof("identity %s completed onboarding of business %s", identityID, business.ID)

	return business, nil
}

func NewService(storage StorageInterface, businesses BusinessUpdaterInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.businesses = businesses
	s.validate = validation.NewValidator()

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
