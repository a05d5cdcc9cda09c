// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"testing"

	"github.com/canonical/business-access-service/pkg/tier"
)

func TestIsPageVisible(t *testing.T) {
	tiers := []tier.Tier{
		tier.NewNone(),
		tier.NewTenantOwner(),
		tier.NewNGOAdmin("ngo-1"),
		tier.NewSystemAdmin(),
	}

	for _, tr := range tiers {
		for _, p := range Pages() {
			if !IsPageVisible(p, tr, nil) {
				t.Errorf("expected %s visible for %s by default", p, tr)
			}
			if !IsPageVisible(p, tr, &Overrides{Loaded: false}) {
				t.Errorf("expected %s visible for %s while overrides load", p, tr)
			}
		}
	}
}

func TestIsPageVisibleWithOverrides(t *testing.T) {
	overrides := NewOverrides([]string{"sales", "reports", "unknown"})

	tests := []struct {
		page     PageKey
		expected bool
	}{
		{Sales, true},
		{Reports, true},
		{Dashboard, false},
		{Settings, false},
		{PageKey("unknown"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.page), func(t *testing.T) {
			if got := IsPageVisible(tt.page, tier.NewTenantOwner(), overrides); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewOverridesEmpty(t *testing.T) {
	if o := NewOverrides(nil); o != nil {
		t.Errorf("expected no overrides, got %+v", o)
	}
}

func TestIsAdminPanelVisible(t *testing.T) {
	tests := []struct {
		tier     tier.Tier
		expected bool
	}{
		{tier.NewNone(), false},
		{tier.NewTenantOwner(), false},
		{tier.NewNGOAdmin("ngo-1"), true},
		{tier.NewSystemAdmin(), true},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			if got := IsAdminPanelVisible(tt.tier); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPageRoutes(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Pages() {
		r := p.Route()
		if r != "/"+string(p) {
			t.Errorf("unexpected route %s for %s", r, p)
		}
		if seen[r] {
			t.Errorf("duplicate route %s", r)
		}
		seen[r] = true
	}

	if len(seen) != 10 {
		t.Errorf("expected 10 pages, got %d", len(seen))
	}
	if seen[AdminPanelRoute] {
		t.Error("admin panel must not be a page")
	}
}
