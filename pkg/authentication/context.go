// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

type identityContextKey struct{}

// WithIdentityID binds the authenticated identity to ctx.
func WithIdentityID(ctx context.Context, identityID string) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identityID)
}

// GetIdentityID returns the identity bound by the authentication or identity
// middleware, false when the request is anonymous.
func GetIdentityID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(identityContextKey{}).(string)
	return id, ok && id != ""
}
