// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/tier"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tiers   TierResolverInterface
	tenants TenantFinderInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tiers TierResolverInterface,
	tenants TenantFinderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tiers:   tiers,
		tenants: tenants,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration records a new identity as pending onboarding. The
// business itself is only provisioned on the first write.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("Handling registration for identity %s with email %s", identityID, email)

	if identityID == "" {
		return types.NewValidationError("id", "required")
	}

	if err := s.storage.SeedProfile(ctx, identityID); err != nil {
		return fmt.Errorf("%w: failed to seed profile: %v", types.ErrTransientStorage, err)
	}

	s.logger.Infof("Identity %s registered, onboarding pending", identityID)
	return nil
}

// HandleTokenHook adds the caller's tier and business to the issued tokens.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	if req == nil || req.Session == nil || req.Session.DefaultSession == nil {
		s.logger.Debugf("Token hook called without a session")
		return nil, types.NewValidationError("session", "required")
	}

	subject := req.Session.DefaultSession.Subject
	if subject == "" {
		s.logger.Debugf("Token hook called without a subject")
		return nil, types.NewValidationError("session.subject", "required")
	}

	s.logger.Debugf("Enriching tokens of %s", subject)

	var (
		t        tier.Tier
		business *types.Business
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		t, err = s.tiers.ResolveTier(gctx, subject)
		return err
	})

	g.Go(func() error {
		var err error
		business, err = s.tenants.FindTenant(gctx, subject)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	claims := map[string]interface{}{
		ClaimTier: string(t.Kind),
	}

	if t.NGOID != "" {
		claims[ClaimNGOID] = t.NGOID
	}

	if business != nil {
		claims[ClaimBusinessID] = business.ID
	}

	resp := new(TokenHookResponse)
	resp.Session.IDToken = claims
	resp.Session.AccessToken = claims

	return resp, nil
}
