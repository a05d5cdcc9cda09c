// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/session"
	"github.com/canonical/business-access-service/pkg/tier"
)

func TestAPI(t *testing.T) {
	owner := &session.State{IdentityID: "owner-1", Tier: tier.NewTenantOwner()}
	admin := &session.State{IdentityID: "admin-1", Tier: tier.NewSystemAdmin()}

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		state          *session.State
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedClass  types.ErrorClass
	}{
		{
			name:           "business requires a session",
			method:         http.MethodGet,
			path:           "/business",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedClass:  types.ErrorClassNotAuthenticated,
		},
		{
			name:   "business not provisioned yet",
			method: http.MethodGet,
			path:   "/business",
			state:  owner,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().FindTenant(gomock.Any(), "owner-1").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "update business",
			method: http.MethodPut,
			path:   "/business",
			body:   `{"name":"Mama Shop"}`,
			state:  owner,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdateBusiness(gomock.Any(), "owner-1", &BusinessProfile{Name: ptr("Mama Shop")}).
					Return(&types.Business{ID: "b-1", Name: "Mama Shop"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "update business validation",
			method: http.MethodPut,
			path:   "/business",
			body:   `{"currency":"XX"}`,
			state:  owner,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdateBusiness(gomock.Any(), "owner-1", gomock.Any()).Return(nil, types.NewValidationError("currency", "iso4217"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedClass:  types.ErrorClassValidation,
		},
		{
			name:   "update business storage failure",
			method: http.MethodPut,
			path:   "/business",
			body:   `{"name":"Mama Shop"}`,
			state:  owner,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdateBusiness(gomock.Any(), "owner-1", gomock.Any()).Return(nil, types.ErrTransientStorage)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedClass:  types.ErrorClassTransientStorage,
		},
		{
			name:   "list businesses",
			method: http.MethodGet,
			path:   "/admin/businesses?page=2&size=10",
			state:  admin,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListBusinesses(gomock.Any(), tier.NewSystemAdmin(), "admin-1", int64(2), int64(10)).Return([]*types.BusinessOwner{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "list businesses bad page",
			method:         http.MethodGet,
			path:           "/admin/businesses?page=two",
			state:          admin,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedClass:  types.ErrorClassValidation,
		},
		{
			name:   "list businesses forbidden",
			method: http.MethodGet,
			path:   "/admin/businesses",
			state:  owner,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListBusinesses(gomock.Any(), tier.NewTenantOwner(), "owner-1", int64(0), int64(0)).Return(nil, types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedClass:  types.ErrorClassForbidden,
		},
		{
			name:   "set business ngo",
			method: http.MethodPut,
			path:   "/admin/businesses/b-1/ngo",
			body:   `{"ngo_id":"ngo-1"}`,
			state:  admin,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().SetBusinessNGO(gomock.Any(), tier.NewSystemAdmin(), "admin-1", "b-1", ptr("ngo-1")).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			tt.setupMocks(service)

			mux := chi.NewMux()
			NewAPI(service, logging.NewNoopLogger()).RegisterEndpoints(mux)

			ctx := context.Background()
			if tt.state != nil {
				ctx = session.WithState(ctx, tt.state)
			}

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body)).WithContext(ctx)
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}

			var resp httptypes.Response
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Class != tt.expectedClass {
				t.Errorf("expected class %q, got %q", tt.expectedClass, resp.Class)
			}
		})
	}
}
