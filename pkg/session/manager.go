// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
)

var _ ManagerInterface = (*Manager)(nil)

// ErrSessionEnded is returned to callers waiting on a resolution that was
// superseded by a sign out or a new sign in.
var ErrSessionEnded = fmt.Errorf("session ended during resolution: %w", types.ErrNotAuthenticated)

type entry struct {
	done  chan struct{}
	state *State
	err   error
}

// Manager keeps one resolved State per identity for the lifetime of the
// process. Resolutions run detached from the request that triggered them
// and are discarded if the entry was replaced or removed meanwhile.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*entry

	timeout time.Duration

	tiers      TierResolverInterface
	tenants    TenantFinderInterface
	onboarding OnboardingInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// SignIn drops any cached state for identityID and resolves it again.
func (m *Manager) SignIn(ctx context.Context, identityID string) (*State, error) {
	ctx, span := m.tracer.Start(ctx, "session.Manager.SignIn")
	defer span.End()

	if identityID == "" {
		return nil, types.ErrNotAuthenticated
	}

	m.mu.Lock()
	e := m.start(ctx, identityID)
	m.mu.Unlock()

	state, err := m.await(ctx, identityID, e)
	if err != nil {
		return nil, err
	}

	m.logger.Security().AuthnSuccess(identityID)
	m.event("sign_in")

	return state, nil
}

// SignOut forgets identityID, a resolution still in flight is discarded.
func (m *Manager) SignOut(identityID string) {
	m.mu.Lock()
	_, ok := m.entries[identityID]
	delete(m.entries, identityID)
	m.mu.Unlock()

	if !ok {
		return
	}

	m.logger.Security().SessionTerminated(identityID)
	m.event("sign_out")
}

// Ensure returns the cached state, joining an in-flight resolution or
// starting one when the identity has none.
func (m *Manager) Ensure(ctx context.Context, identityID string) (*State, error) {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Ensure")
	defer span.End()

	if identityID == "" {
		return nil, types.ErrNotAuthenticated
	}

	m.mu.Lock()
	e, ok := m.entries[identityID]
	if !ok {
		e = m.start(ctx, identityID)
	}
	m.mu.Unlock()

	return m.await(ctx, identityID, e)
}

// Update applies fn to a copy of the resolved state and stores the copy,
// it reports false when there is no resolved state to update.
func (m *Manager) Update(identityID string, fn func(*State)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[identityID]
	if !ok || !closed(e.done) || e.state == nil {
		return false
	}

	next := *e.state
	fn(&next)

	done := make(chan struct{})
	close(done)
	m.entries[identityID] = &entry{done: done, state: &next}

	return true
}

// start must be called with m.mu held.
func (m *Manager) start(ctx context.Context, identityID string) *entry {
	e := &entry{done: make(chan struct{})}
	m.entries[identityID] = e

	go m.resolve(context.WithoutCancel(ctx), identityID, e)

	return e
}

func (m *Manager) resolve(ctx context.Context, identityID string, e *entry) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	state, err := m.load(ctx, identityID)

	m.mu.Lock()
	defer m.mu.Unlock()
	defer close(e.done)

	if m.entries[identityID] != e {
		m.logger.Debugf("discarding session resolution for %s, session ended", identityID)
		e.err = ErrSessionEnded
		return
	}

	if err != nil {
		// failures are not cached, the next call retries
		delete(m.entries, identityID)
		e.err = err
		return
	}

	e.state = state
}

func (m *Manager) load(ctx context.Context, identityID string) (*State, error) {
	ctx, span := m.tracer.Start(ctx, "session.Manager.load")
	defer span.End()

	state := &State{IdentityID: identityID}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := m.tiers.ResolveTier(gctx, identityID)
		if err != nil {
			return err
		}
		state.Tier = t
		return nil
	})

	g.Go(func() error {
		b, err := m.tenants.FindTenant(gctx, identityID)
		if err != nil {
			return err
		}
		state.Business = b
		return nil
	})

	g.Go(func() error {
		needs, err := m.onboarding.NeedsOnboarding(gctx, identityID)
		if err != nil {
			return err
		}
		state.NeedsOnboarding = needs
		return nil
	})

	if err := g.Wait(); err != nil {
		m.logger.Errorf("failed to resolve session for %s: %v", identityID, err)
		return nil, err
	}

	state.ResolvedAt = time.Now().UTC()

	return state, nil
}

// await waits for e, following the entry that replaced it when a new sign in
// superseded the resolution. Only a sign out ends the wait with ErrSessionEnded.
func (m *Manager) await(ctx context.Context, identityID string, e *entry) (*State, error) {
	for {
		select {
		case <-e.done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		if e.err != ErrSessionEnded {
			return e.state, e.err
		}

		m.mu.Lock()
		next, ok := m.entries[identityID]
		m.mu.Unlock()

		if !ok || next == e {
			return nil, e.err
		}

		e = next
	}
}

func (m *Manager) event(kind string) {
	if err := m.monitor.IncSessionEvent(map[string]string{"event": kind}); err != nil {
		m.logger.Debugf("failed to record session event: %v", err)
	}
}

func closed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func NewManager(
	tiers TierResolverInterface,
	tenants TenantFinderInterface,
	onboarding OnboardingInterface,
	timeout time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Manager {
	m := new(Manager)

	m.entries = make(map[string]*entry)
	m.timeout = timeout

	m.tiers = tiers
	m.tenants = tenants
	m.onboarding = onboarding

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
