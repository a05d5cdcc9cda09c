// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
)

// Scope carries the values the row security policies read through
// current_setting(), they only live as long as the transaction.
type Scope struct {
	IdentityID string
	Tier       string
	NGOID      string
}

const (
	settingIdentity = "app.identity_id"
	settingTier     = "app.tier"
	settingNGO      = "app.ngo_id"
)

// WithScope executes fn inside a transaction where the row security settings
// are set locally, rows outside the scope are invisible to every statement run
// with the transaction context.
func (d *DBClient) WithScope(ctx context.Context, scope Scope, fn func(context.Context) error) error {
	if scope.IdentityID == "" {
		return fmt.Errorf("refusing to open a scoped transaction without an identity")
	}

	return d.WithTx(ctx, func(txCtx context.Context) error {
		// opened eagerly so a failure surfaces here rather than as an unscoped read
		if _, err := lazyTxFromContext(txCtx).get(); err != nil {
			return fmt.Errorf("failed to open scoped transaction: %w", err)
		}

		_, err := d.Statement(txCtx).
			Select().
			Column("set_config(?, ?, true)", settingIdentity, scope.IdentityID).
			Column("set_config(?, ?, true)", settingTier, scope.Tier).
			Column("set_config(?, ?, true)", settingNGO, scope.NGOID).
			ExecContext(txCtx)
		if err != nil {
			return fmt.Errorf("failed to bind row security scope: %w", err)
		}

		return fn(txCtx)
	})
}
