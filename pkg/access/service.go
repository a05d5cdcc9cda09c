// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"fmt"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/tier"
)

var _ ServiceInterface = (*Service)(nil)

type MenuItem struct {
	Key     PageKey `json:"key"`
	Route   string  `json:"route"`
	Visible bool    `json:"visible"`
}

// Menu is what the navigation chrome renders for a caller.
type Menu struct {
	Items      []MenuItem `json:"items"`
	AdminPanel bool       `json:"admin_panel"`
	AdminRoute string     `json:"admin_route,omitempty"`
	Overridden bool       `json:"overridden"`
}

type Service struct {
	source OverrideSourceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Menu never fails, an unavailable override source leaves every page visible.
func (s *Service) Menu(ctx context.Context, identityID string, t tier.Tier) *Menu {
	ctx, span := s.tracer.Start(ctx, "access.Service.Menu")
	defer span.End()

	var overrides *Overrides

	if identityID != "" {
		grants, err := s.source.ListPageGrants(ctx, identityID)
		if err != nil {
			s.logger.Warnf("page overrides unavailable for %s, showing default menu: %v", identityID, err)
		} else {
			overrides = NewOverrides(grants)
		}
	}

	menu := &Menu{
		Items:      make([]MenuItem, 0, len(pages)),
		AdminPanel: IsAdminPanelVisible(t),
		Overridden: overrides != nil,
	}

	if menu.AdminPanel {
		menu.AdminRoute = AdminPanelRoute
	}

	for _, p := range pages {
		menu.Items = append(menu.Items, MenuItem{Key: p, Route: p.Route(), Visible: IsPageVisible(p, t, overrides)})
	}

	return menu
}

func (s *Service) GrantPage(ctx context.Context, actor tier.Tier, actorID, identityID string, page PageKey) error {
	ctx, span := s.tracer.Start(ctx, "access.Service.GrantPage")
	defer span.End()

	if err := s.authorize(actor, actorID, identityID, page); err != nil {
		return err
	}

	if err := s.source.AssignPageViewer(ctx, identityID, string(page)); err != nil {
		s.logger.Errorf("failed to grant page %s to %s: %v", page, identityID, err)
		return fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	s.logger.Security().AdminAction(actorID, "grant_page", fmt.Sprintf("%s:%s", identityID, page))

	return nil
}

func (s *Service) RevokePage(ctx context.Context, actor tier.Tier, actorID, identityID string, page PageKey) error {
	ctx, span := s.tracer.Start(ctx, "access.Service.RevokePage")
	defer span.End()

	if err := s.authorize(actor, actorID, identityID, page); err != nil {
		return err
	}

	if err := s.source.RevokePageViewer(ctx, identityID, string(page)); err != nil {
		s.logger.Errorf("failed to revoke page %s from %s: %v", page, identityID, err)
		return fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	s.logger.Security().AdminAction(actorID, "revoke_page", fmt.Sprintf("%s:%s", identityID, page))

	return nil
}

// ResetPages drops every override of identityID, restoring the default menu.
func (s *Service) ResetPages(ctx context.Context, actor tier.Tier, actorID, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "access.Service.ResetPages")
	defer span.End()

	if err := s.authorize(actor, actorID, identityID, Dashboard); err != nil {
		return err
	}

	if err := s.source.ClearPageGrants(ctx, identityID); err != nil {
		s.logger.Errorf("failed to reset pages of %s: %v", identityID, err)
		return fmt.Errorf("%w: %v", types.ErrTransientStorage, err)
	}

	s.logger.Security().AdminAction(actorID, "reset_pages", identityID)

	return nil
}

func (s *Service) authorize(actor tier.Tier, actorID, identityID string, page PageKey) error {
	if actor.Kind != tier.SystemAdmin {
		s.logger.Security().AuthzFailure(actorID, "page-grants")
		return types.ErrForbidden
	}

	if identityID == "" {
		return types.NewValidationError("identity_id", "required")
	}

	if !page.Valid() {
		return types.NewValidationError("page", "oneof")
	}

	return nil
}

func NewService(source OverrideSourceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.source = source

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
