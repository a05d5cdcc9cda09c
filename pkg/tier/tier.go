// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tier

import "fmt"

type Kind string

const (
	None        Kind = "none"
	TenantOwner Kind = "tenant_owner"
	NGOAdmin    Kind = "ngo_admin"
	SystemAdmin Kind = "system_admin"
)

// Tier is the administrative classification of an identity, NGOID is only
// set for NGOAdmin.
type Tier struct {
	Kind  Kind   `json:"kind"`
	NGOID string `json:"ngo_id,omitempty"`
}

func NewNone() Tier {
	return Tier{Kind: None}
}

func NewTenantOwner() Tier {
	return Tier{Kind: TenantOwner}
}

func NewSystemAdmin() Tier {
	return Tier{Kind: SystemAdmin}
}

func NewNGOAdmin(ngoID string) Tier {
	return Tier{Kind: NGOAdmin, NGOID: ngoID}
}

// IsAdmin reports whether the tier can reach the administration panel.
func (t Tier) IsAdmin() bool {
	return t.Kind == SystemAdmin || t.Kind == NGOAdmin
}

func (t Tier) IsNone() bool {
	return t.Kind == "" || t.Kind == None
}

func (t Tier) String() string {
	if t.Kind == NGOAdmin {
		return fmt.Sprintf("%s(%s)", t.Kind, t.NGOID)
	}
	if t.Kind == "" {
		return string(None)
	}
	return string(t.Kind)
}
