// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"net/http"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/authentication"
)

// Middleware attaches the session state of the authenticated identity to
// the request context, requests without an identity are rejected.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identityID, ok := authentication.GetIdentityID(r.Context())
		if !ok || identityID == "" {
			httptypes.WriteError(w, types.ErrNotAuthenticated)
			return
		}

		state, err := m.Ensure(r.Context(), identityID)
		if err != nil {
			httptypes.WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithState(r.Context(), state)))
	})
}
