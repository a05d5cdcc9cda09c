// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"github.com/canonical/business-access-service/pkg/tier"
)

// Overrides is an explicit per identity grant set. A nil or not yet loaded
// set leaves the default policy in place.
type Overrides struct {
	Loaded  bool
	Granted map[PageKey]bool
}

// NewOverrides builds a loaded grant set, unknown page names are ignored.
// An empty grant list means no overrides are defined.
func NewOverrides(granted []string) *Overrides {
	if len(granted) == 0 {
		return nil
	}

	o := &Overrides{Loaded: true, Granted: make(map[PageKey]bool, len(granted))}
	for _, g := range granted {
		if p, ok := ParsePageKey(g); ok {
			o.Granted[p] = true
		}
	}

	return o
}

// IsPageVisible reports whether page is shown in the navigation. Every page
// is visible to every tier unless loaded overrides narrow it.
func IsPageVisible(page PageKey, _ tier.Tier, overrides *Overrides) bool {
	if !page.Valid() {
		return false
	}

	if overrides == nil || !overrides.Loaded {
		return true
	}

	return overrides.Granted[page]
}

func IsAdminPanelVisible(t tier.Tier) bool {
	return t.IsAdmin()
}
