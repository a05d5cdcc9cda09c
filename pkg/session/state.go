// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"time"

	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/tier"
)

// State is what is known about a signed in identity. Business is nil until
// the first write provisions one.
type State struct {
	IdentityID      string          `json:"identity_id"`
	Tier            tier.Tier       `json:"tier"`
	Business        *types.Business `json:"business"`
	NeedsOnboarding bool            `json:"needs_onboarding"`
	ResolvedAt      time.Time       `json:"resolved_at"`
}

type stateContextKey struct{}

func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, stateContextKey{}, s)
}

// FromContext returns the session state attached by the session middleware.
func FromContext(ctx context.Context) (*State, bool) {
	s, ok := ctx.Value(stateContextKey{}).(*State)
	return s, ok && s != nil
}
