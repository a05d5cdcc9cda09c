// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/authentication"
	"github.com/canonical/business-access-service/pkg/tier"
)

func TestAPI_Session(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		identity       string
		setupMocks     func(*MockManagerInterface)
		expectedStatus int
	}{
		{
			name:           "sign in without identity",
			method:         http.MethodPost,
			setupMocks:     func(*MockManagerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:     "sign in",
			method:   http.MethodPost,
			identity: "owner-1",
			setupMocks: func(m *MockManagerInterface) {
				m.EXPECT().SignIn(gomock.Any(), "owner-1").Return(&State{IdentityID: "owner-1", Tier: tier.NewTenantOwner()}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "sign in storage failure",
			method:   http.MethodPost,
			identity: "owner-1",
			setupMocks: func(m *MockManagerInterface) {
				m.EXPECT().SignIn(gomock.Any(), "owner-1").Return(nil, types.ErrTransientStorage)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:     "current session",
			method:   http.MethodGet,
			identity: "owner-1",
			setupMocks: func(m *MockManagerInterface) {
				m.EXPECT().Ensure(gomock.Any(), "owner-1").Return(&State{IdentityID: "owner-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "sign out",
			method:   http.MethodDelete,
			identity: "owner-1",
			setupMocks: func(m *MockManagerInterface) {
				m.EXPECT().SignOut("owner-1")
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			manager := NewMockManagerInterface(ctrl)
			tt.setupMocks(manager)

			mux := chi.NewMux()
			NewAPI(manager, logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(tt.method, "/session", nil)
			if tt.identity != "" {
				req = req.WithContext(authentication.WithIdentityID(req.Context(), tt.identity))
			}
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}

			var resp httptypes.Response
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.expectedStatus {
				t.Errorf("expected envelope status %d, got %d", tt.expectedStatus, resp.Status)
			}
		})
	}
}
