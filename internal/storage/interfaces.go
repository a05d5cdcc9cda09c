// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/business-access-service/internal/types"
)

type StorageInterface interface {
	FindBusinessByOwner(ctx context.Context, ownerID string) (*types.Business, error)
	GetBusinessByID(ctx context.Context, id string) (*types.Business, error)
	CreateBusiness(ctx context.Context, b *types.Business) (*types.Business, error)
	UpdateBusiness(ctx context.Context, id string, fields map[string]any) (*types.Business, error)
	ListBusinesses(ctx context.Context, ngoID string, page, size int64) ([]*types.Business, error)
	SetBusinessNGO(ctx context.Context, id string, ngoID *string) error

	HasSystemRole(ctx context.Context, identityID string) (bool, error)
	FindActiveNGOAdminMembership(ctx context.Context, identityID string) (*types.NGOMembership, error)
	GrantRole(ctx context.Context, identityID, role string) error
	RevokeRole(ctx context.Context, identityID, role string) error

	GetProfile(ctx context.Context, identityID string) (*types.Profile, error)
	SeedProfile(ctx context.Context, identityID string) error
	CompleteProfile(ctx context.Context, identityID string) error

	ListResources(ctx context.Context, table string, columns []string, scan func(Scanner) error) error
	InsertResource(ctx context.Context, table string, values map[string]any, columns []string, scan func(Scanner) error) error
	UpdateResource(ctx context.Context, table, id string, values map[string]any, columns []string, scan func(Scanner) error) error
	DeleteResource(ctx context.Context, table, id string) error

	VerifyRowSecurity(ctx context.Context, tables ...string) error
}

// Scanner is satisfied by both *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}
