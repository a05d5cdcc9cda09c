// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/business-access-service/pkg/authentication"
	"github.com/canonical/business-access-service/pkg/tier"
)

func TestManager_Middleware(t *testing.T) {
	tests := []struct {
		name           string
		identity       string
		setupMocks     func(mocks)
		expectedStatus int
	}{
		{
			name:           "anonymous request is rejected",
			setupMocks:     func(mocks) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:     "state is attached",
			identity: "owner-1",
			setupMocks: func(m mocks) {
				m.tiers.EXPECT().ResolveTier(gomock.Any(), "owner-1").Return(tier.NewTenantOwner(), nil)
				m.tenants.EXPECT().FindTenant(gomock.Any(), "owner-1").Return(nil, nil)
				m.onboarding.EXPECT().NeedsOnboarding(gomock.Any(), "owner-1").Return(false, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			manager, m := newTestManager(ctrl)
			tt.setupMocks(m)

			var seen *State
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/sales", nil)
			if tt.identity != "" {
				req = req.WithContext(authentication.WithIdentityID(req.Context(), tt.identity))
			}
			rr := httptest.NewRecorder()

			manager.Middleware(next).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if tt.expectedStatus == http.StatusOK && (seen == nil || seen.IdentityID != tt.identity) {
				t.Errorf("expected state for %s, got %+v", tt.identity, seen)
			}
		})
	}
}
