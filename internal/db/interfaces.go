// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

type DBClientInterface interface {
	Statement(context.Context) sq.StatementBuilderType
	WithTx(context.Context, func(context.Context) error) error
	// WithScope runs fn in a transaction whose row security settings are bound to scope
	WithScope(context.Context, Scope, func(context.Context) error) error
	Close()
}

type TxInterface interface {
	Commit() error
	Rollback() error
	sq.BaseRunner
}

// NotifierInterface fans database change notifications out to in-process subscribers.
type NotifierInterface interface {
	Subscribe(table, ownerID string) (<-chan []byte, func())
}
