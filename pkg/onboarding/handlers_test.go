// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/session"
	"github.com/canonical/business-access-service/pkg/tier"
)

func TestAPI_Complete(t *testing.T) {
	business := &types.Business{ID: "b-1", OwnerID: "owner-1"}

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockSessionUpdaterInterface)
		expectedStatus int
	}{
		{
			name: "completes and refreshes the session",
			body: `{"name":"Mama Shop","business_type":"retail","currency":"USD"}`,
			setupMocks: func(s *MockServiceInterface, u *MockSessionUpdaterInterface) {
				s.EXPECT().Complete(gomock.Any(), "owner-1", &CompleteRequest{Name: "Mama Shop", BusinessType: "retail", Currency: "USD"}).Return(business, nil)
				u.EXPECT().Update("owner-1", gomock.Any()).DoAndReturn(
					func(_ string, fn func(*session.State)) bool {
						st := &session.State{NeedsOnboarding: true}
						fn(st)
						if st.NeedsOnboarding || st.Business != business {
							t.Errorf("session not refreshed: %+v", st)
						}
						return true
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "validation failure leaves the session alone",
			body: `{"name":""}`,
			setupMocks: func(s *MockServiceInterface, u *MockSessionUpdaterInterface) {
				s.EXPECT().Complete(gomock.Any(), "owner-1", gomock.Any()).Return(nil, types.NewValidationError("name", "required"))
				u.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			updater := NewMockSessionUpdaterInterface(ctrl)
			tt.setupMocks(service, updater)

			mux := chi.NewMux()
			NewAPI(service, updater).RegisterEndpoints(mux)

			ctx := session.WithState(context.Background(), &session.State{IdentityID: "owner-1", Tier: tier.NewTenantOwner(), NeedsOnboarding: true})
			req := httptest.NewRequest(http.MethodPost, "/onboarding", bytes.NewBufferString(tt.body)).WithContext(ctx)
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
