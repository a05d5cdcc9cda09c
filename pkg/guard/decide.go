// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"strings"

	"github.com/canonical/business-access-service/pkg/access"
	"github.com/canonical/business-access-service/pkg/tier"
)

const (
	AuthRoute       = "/auth"
	OnboardingRoute = "/onboarding"
	HomeRoute       = "/"
)

type Outcome string

const (
	Loading  Outcome = "loading"
	Redirect Outcome = "redirect"
	Allow    Outcome = "allow"
)

// Snapshot is the session as seen at the time of a navigation.
type Snapshot struct {
	Loading         bool
	Authenticated   bool
	Tier            tier.Tier
	NeedsOnboarding bool
}

type Decision struct {
	Outcome  Outcome `json:"outcome"`
	Location string  `json:"location,omitempty"`
}

// Decide evaluates the navigation rules in order, the first match wins.
func Decide(path string, s Snapshot) Decision {
	switch {
	case s.Loading:
		return Decision{Outcome: Loading}
	case !s.Authenticated:
		return redirect(AuthRoute)
	}

	if s.Tier.Kind == tier.TenantOwner || s.Tier.Kind == tier.None {
		onOnboarding := matches(path, OnboardingRoute)

		if s.NeedsOnboarding && !onOnboarding {
			return redirect(OnboardingRoute)
		}

		if !s.NeedsOnboarding && onOnboarding {
			return redirect(HomeRoute)
		}
	}

	if matches(path, access.AdminPanelRoute) && !access.IsAdminPanelVisible(s.Tier) {
		return redirect(HomeRoute)
	}

	return Decision{Outcome: Allow}
}

func redirect(location string) Decision {
	return Decision{Outcome: Redirect, Location: location}
}

// matches reports whether path is route or one of its sub paths.
func matches(path, route string) bool {
	path = strings.TrimSuffix(path, "/")
	return path == route || strings.HasPrefix(path, route+"/")
}
