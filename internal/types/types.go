// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	DefaultBusinessName = "My Business"
	DefaultBusinessType = "retail"
	DefaultCurrency     = "SLL"
)

// Business is the tenant record, every domain row is scoped to one.
type Business struct {
	ID           string    `db:"id" json:"id"`
	OwnerID      string    `db:"owner_id" json:"owner_id"`
	Name         string    `db:"name" json:"name"`
	BusinessType string    `db:"business_type" json:"business_type"`
	Currency     string    `db:"currency" json:"currency"`
	NGOID        *string   `db:"ngo_id" json:"ngo_id,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// NewDefaultBusiness returns the record provisioned when an owner has none yet.
func NewDefaultBusiness(ownerID string) *Business {
	return &Business{
		OwnerID:      ownerID,
		Name:         DefaultBusinessName,
		BusinessType: DefaultBusinessType,
		Currency:     DefaultCurrency,
	}
}

type RoleGrant struct {
	IdentityID string    `db:"identity_id"`
	Role       string    `db:"role"`
	CreatedAt  time.Time `db:"created_at"`
}

type NGOMembership struct {
	IdentityID string    `db:"identity_id"`
	NGOID      string    `db:"ngo_id"`
	Role       string    `db:"role"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
}

type Profile struct {
	IdentityID          string    `db:"identity_id" json:"identity_id"`
	OnboardingCompleted bool      `db:"onboarding_completed" json:"onboarding_completed"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// BusinessOwner is a business as seen from the administration panel.
type BusinessOwner struct {
	Business
	OwnerEmail string `json:"owner_email"`
}

// ChangeOpResync marks an event that reports no particular write, receivers
// refetch because notifications may have been missed.
const ChangeOpResync = "RESYNC"

// ChangeEvent is the payload published by the database on every write
// to a tenant scoped table.
type ChangeEvent struct {
	Table      string `json:"table"`
	Op         string `json:"op"`
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	BusinessID string `json:"business_id"`
}
