// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"
	"errors"
	"time"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
)

var _ GuardInterface = (*Guard)(nil)

// Guard answers navigation decisions from the session cache. It waits for
// an in-flight resolution for at most wait before reporting loading.
type Guard struct {
	sessions SessionInterface
	wait     time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (g *Guard) Evaluate(ctx context.Context, identityID, path string) (Decision, error) {
	ctx, span := g.tracer.Start(ctx, "guard.Guard.Evaluate")
	defer span.End()

	if identityID == "" {
		return Decide(path, Snapshot{}), nil
	}

	wctx, cancel := context.WithTimeout(ctx, g.wait)
	defer cancel()

	state, err := g.sessions.Ensure(wctx, identityID)

	switch {
	case err == nil:
		return Decide(path, Snapshot{
			Authenticated:   true,
			Tier:            state.Tier,
			NeedsOnboarding: state.NeedsOnboarding,
		}), nil
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		return Decide(path, Snapshot{Loading: true}), nil
	case errors.Is(err, types.ErrNotAuthenticated):
		return Decide(path, Snapshot{}), nil
	default:
		g.logger.Errorf("failed to evaluate navigation to %s for %s: %v", path, identityID, err)
		return Decision{}, err
	}
}

func NewGuard(sessions SessionInterface, wait time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Guard {
	g := new(Guard)

	g.sessions = sessions
	g.wait = wait

	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}
