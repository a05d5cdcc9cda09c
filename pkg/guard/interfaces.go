// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"

	"github.com/canonical/business-access-service/pkg/session"
)

type GuardInterface interface {
	Evaluate(ctx context.Context, identityID, path string) (Decision, error)
}

type SessionInterface interface {
	Ensure(ctx context.Context, identityID string) (*session.State, error)
}
